package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/chromacraft/chromacraft-gobackend/internal/auth"
	"github.com/chromacraft/chromacraft-gobackend/internal/config"
	"github.com/chromacraft/chromacraft-gobackend/internal/db"
	"github.com/chromacraft/chromacraft-gobackend/internal/handlers"
	"github.com/chromacraft/chromacraft-gobackend/internal/middleware"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	database := client.Database(cfg.DatabaseName)
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if err := db.EnsureIndexes(ctx, database); err != nil {
			log.Printf("Warning: failed to ensure indexes: %v", err)
		}
	}

	collection := func(name string) store.Collection {
		return store.NewMongoCollection(database.Collection(name))
	}

	// Services and handlers
	tokenService := auth.NewTokenService(cfg.TokenSecret)
	tokenHandler := handlers.NewTokenHandler(tokenService)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	userService := services.NewUserService(collection("users"))
	userHandler := handlers.NewUserHandler(userService, cfg.ConflictStatus)

	categoryService := services.NewCategoryService(collection("categories"))
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	instructorService := services.NewInstructorService(collection("instructors"))
	instructorHandler := handlers.NewInstructorHandler(instructorService)

	classService := services.NewClassService(collection("classes"))
	classHandler := handlers.NewClassHandler(classService)

	reviewService := services.NewReviewService(collection("reviews"))
	reviewHandler := handlers.NewReviewHandler(reviewService)

	selectionService := services.NewSelectionService(collection("selected"), cfg.SelectionScope)
	selectionHandler := handlers.NewSelectionHandler(selectionService, cfg.ConflictStatus)

	enrollmentService := services.NewEnrollmentService(collection("enrolled"))
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)

	paymentService := services.NewPaymentService(collection("payments"))
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	stripeService := services.NewStripeService(cfg.PaymentSecretKey, cfg.PaymentAPIBase)
	stripeHandler := handlers.NewStripeHandler(stripeService)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Chroma Craft Server"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/jwt", tokenHandler.IssueToken).Methods("POST")

	router.HandleFunc("/categories", categoryHandler.GetCategories).Methods("GET")
	router.HandleFunc("/categories/classes/{id}", classHandler.GetClassesByCategory).Methods("GET")
	router.HandleFunc("/categories/{id}", categoryHandler.GetCategory).Methods("GET")

	router.HandleFunc("/classes", classHandler.GetClasses).Methods("GET")
	router.HandleFunc("/classes", classHandler.CreateClass).Methods("POST")
	router.HandleFunc("/classes/{id}", classHandler.GetClass).Methods("GET")
	router.HandleFunc("/classes/{id}", classHandler.UpdateClass).Methods("PATCH")
	router.HandleFunc("/classes/{id}", classHandler.DeleteClass).Methods("DELETE")
	router.HandleFunc("/count", classHandler.IncrementEnrolled).Methods("PATCH")

	router.HandleFunc("/instructors", instructorHandler.GetInstructors).Methods("GET")
	router.HandleFunc("/instructors/classes", classHandler.GetClassesByInstructorEmail).Methods("GET")
	router.HandleFunc("/instructors/classes/{id}", classHandler.GetClassesByInstructor).Methods("GET")

	router.HandleFunc("/students", userHandler.GetStudents).Methods("GET")
	router.Handle("/students/{id}", authMiddleware.RequireToken(http.HandlerFunc(userHandler.UpdateUser))).Methods("PATCH")

	router.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/users/{email}", userHandler.GetUserByEmail).Methods("GET")
	router.HandleFunc("/users/{id}", userHandler.UpdateUser).Methods("PATCH")
	router.HandleFunc("/users/{id}", userHandler.DeleteUser).Methods("DELETE")

	router.HandleFunc("/reviews", reviewHandler.GetReviews).Methods("GET")

	router.HandleFunc("/selected", selectionHandler.GetSelected).Methods("GET")
	router.HandleFunc("/selected", selectionHandler.AddSelected).Methods("POST")
	router.HandleFunc("/selected", selectionHandler.DeleteSelectedByEmail).Methods("DELETE")
	router.HandleFunc("/selected/{id}", selectionHandler.IsSelected).Methods("GET")
	router.HandleFunc("/selected/{id}", selectionHandler.DeleteSelected).Methods("DELETE")

	router.HandleFunc("/enrolled", enrollmentHandler.GetEnrolled).Methods("GET")
	router.HandleFunc("/enrolled", enrollmentHandler.Enroll).Methods("POST")
	router.HandleFunc("/enrolled/{id}", enrollmentHandler.IsEnrolled).Methods("GET")
	router.HandleFunc("/enrolled/{id}", enrollmentHandler.DeleteEnrolled).Methods("DELETE")

	router.HandleFunc("/payments", paymentHandler.GetPayments).Methods("GET")
	router.HandleFunc("/payments", paymentHandler.CreatePayment).Methods("POST")
	router.Handle("/payments/{id}", authMiddleware.RequireToken(http.HandlerFunc(paymentHandler.UpdatePayment))).Methods("PATCH")
	router.Handle("/payments/{id}", authMiddleware.RequireToken(http.HandlerFunc(paymentHandler.DeletePayment))).Methods("DELETE")

	router.HandleFunc("/create-payment-intent", stripeHandler.CreatePaymentIntent).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := middleware.Recover(c.Handler(router))

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Chroma Craft Server is running on port: %s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
