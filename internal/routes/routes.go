package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/percytaquila/apiGYM/internal/config"
	"github.com/percytaquila/apiGYM/internal/handlers"
	"github.com/percytaquila/apiGYM/internal/middleware"
	"github.com/percytaquila/apiGYM/internal/repository"
	"github.com/percytaquila/apiGYM/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)

	faceEncoder, err := services.NewDlibFaceEncoder(cfg.FaceModelsDir)
	if err != nil {
		return err
	}
	biometricService := services.NewBiometricService(userRepo, faceEncoder)
	routineService := services.NewRoutineService(exerciseRepo, routineRepo)
	cohereClient := services.NewCohereClient(cfg.CohereAPIKey, cfg.CohereModel)
	nutritionService := services.NewNutritionService(nutritionRepo, cohereClient)

	userHandler := handlers.NewUserHandler(userRepo, cfg.JWTSecret)
	biometricHandler := handlers.NewBiometricHandler(biometricService)
	trainerHandler := handlers.NewTrainerHandler(trainerRepo)
	exerciseHandler := handlers.NewExerciseHandler(routineService, exerciseRepo)
	progressHandler := handlers.NewProgressHandler(progressRepo)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)

	api := app.Group("/api")

	api.Post("/user/insert", userHandler.Insert)
	api.Post("/user/login", userHandler.Login)

	protected := api.Group("", middleware.AuthRequired(cfg.JWTSecret))

	protected.Put("/user/update/biometric/:id", biometricHandler.Update)
	protected.Put("/user/update-goals", userHandler.UpdateGoals)

	protected.Get("/trainers", trainerHandler.GetTrainers)
	protected.Get("/class-details/:id_horario", trainerHandler.GetClassDetails)

	protected.Post("/exercises/recommendations", exerciseHandler.Recommend)
	protected.Get("/exercises/routine", exerciseHandler.GetRoutine)
	protected.Get("/exercises/body-parts", exerciseHandler.GetBodyParts)
	protected.Get("/exercises/by-body-part", exerciseHandler.GetByBodyPart)

	protected.Post("/progress", progressHandler.Register)
	protected.Get("/progress/:usuario_id", progressHandler.List)
	protected.Delete("/progress/:id", progressHandler.Delete)

	protected.Post("/nutrition-plan", nutritionHandler.GeneratePlan)
	protected.Get("/recommendations/daily", nutritionHandler.GetDailyRecommendations)

	return nil
}
