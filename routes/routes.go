package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"nagarseva/handler"
	"nagarseva/middleware"
	"nagarseva/models"
	"nagarseva/service"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	authService *service.AuthService,
	accountService *service.AccountService,
	complaintService *service.ComplaintService,
	engagementService *service.EngagementService,
	staffService *service.StaffService,
	jwtSecret string,
	uploadBasePath string,
) *mux.Router {
	router := mux.NewRouter()

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	complaintHandler := handler.NewComplaintHandler(complaintService, uploadBasePath)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	adminHandler := handler.NewAdminHandler(staffService)

	authMiddleware := middleware.NewAuthMiddleware(jwtSecret)
	requireAuth := authMiddleware.RequireAuth
	requireCitizen := authMiddleware.RequireRoles(models.RoleCitizen)
	requireFieldOfficer := authMiddleware.RequireRoles(models.RoleFieldOfficer)
	requireAdmin := authMiddleware.RequireRoles(models.RoleAdmin)

	api := router.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/admin/login", authHandler.AdminLogin).Methods("POST")
	api.HandleFunc("/officer/login", authHandler.OfficerLogin).Methods("POST")

	// Profile and account lookup
	api.Handle("/officer/profile/update", requireAuth(http.HandlerFunc(accountHandler.UpdateOwnProfile))).Methods("PUT")
	api.HandleFunc("/user", accountHandler.Get).Methods("GET")
	api.HandleFunc("/update-user", accountHandler.Update).Methods("PUT")

	// Admin staff management. Assignment requires admin auth as well; the
	// route is structurally identical to the other admin routes.
	api.Handle("/admin/create-user", requireAdmin(http.HandlerFunc(adminHandler.CreateStaff))).Methods("POST")
	api.Handle("/admin/remove-user/{id}", requireAdmin(http.HandlerFunc(adminHandler.RemoveStaff))).Methods("DELETE")
	api.Handle("/admin/assign-field-officer", requireAdmin(http.HandlerFunc(adminHandler.AssignFieldOfficer))).Methods("POST")

	// Complaint lifecycle
	api.Handle("/complaint", requireCitizen(http.HandlerFunc(complaintHandler.Create))).Methods("POST")
	api.HandleFunc("/complaint/{complaint_id}", complaintHandler.Get).Methods("GET")
	api.HandleFunc("/complaints", complaintHandler.List).Methods("GET")
	api.Handle("/complaints/{id}/status", requireFieldOfficer(http.HandlerFunc(complaintHandler.UpdateStatus))).Methods("PUT")
	api.HandleFunc("/complaints/{id}/timeline", complaintHandler.Timeline).Methods("GET")

	// Engagement
	api.Handle("/complaints/{id}/upvote", requireCitizen(http.HandlerFunc(engagementHandler.ToggleUpvote))).Methods("POST")
	api.Handle("/complaints/{id}/comment", requireCitizen(http.HandlerFunc(engagementHandler.AddComment))).Methods("POST")
	api.HandleFunc("/complaints/{id}/comments", engagementHandler.ListComments).Methods("GET")

	// Uploaded proof images
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadBasePath))),
	)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	return router
}
