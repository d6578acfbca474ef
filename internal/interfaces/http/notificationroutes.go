package http

func (r *Router) setupNotificationRoutes() {
	notifications := r.engine.Group("/notifications")
	notifications.Use(r.authMiddleware.RequireAuth())
	{
		notifications.GET("", r.notificationHandler.List)
		notifications.PATCH("/:id/read", r.notificationHandler.MarkAsRead)
		notifications.PATCH("/read-all", r.notificationHandler.MarkAllAsRead)

		notifications.GET("/preferences", r.notificationHandler.GetPreferences)
		notifications.PUT("/preferences", r.notificationHandler.UpdatePreferences)
	}
}
