package http

import (
	"vox/internal/infrastructure/ratelimit"
	"vox/internal/interfaces/http/middleware"
	"vox/internal/shared/authorization"
)

func (r *Router) setupFeedbackRoutes() {
	submitLimits := ratelimit.SubmitLimits{
		PerMinute: r.cfg.Triage.SubmitPerMinute,
		PerHour:   r.cfg.Triage.SubmitPerHour,
	}

	feedback := r.engine.Group("/feedback")
	feedback.Use(r.authMiddleware.RequireAuth())
	{
		feedback.POST("",
			middleware.SubmitRateLimit(r.rateLimiter, submitLimits, r.logger),
			r.feedbackHandler.Submit)
		feedback.GET("", r.feedbackHandler.List)
		feedback.GET("/:id", r.feedbackHandler.Get)
		feedback.PATCH("/:id", r.feedbackHandler.Edit)

		feedback.POST("/:id/assign", authorization.RequireStaff(), r.feedbackHandler.Assign)
		feedback.PATCH("/:id/status", authorization.RequireStaff(), r.feedbackHandler.UpdateStatus)
		feedback.POST("/:id/notes", authorization.RequireStaff(), r.feedbackHandler.AddNote)
		feedback.POST("/:id/escalate", authorization.RequireStaff(), r.feedbackHandler.Escalate)
	}

	admin := r.engine.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth())
	{
		admin.POST("/overdue-sweep",
			authorization.RequireRoles(authorization.RoleICTAdmin),
			r.feedbackHandler.SweepOverdue)
	}
}
