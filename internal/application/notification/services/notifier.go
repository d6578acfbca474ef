// Package services holds the notification dispatch service shared by
// the feedback use cases and the overdue sweep.
package services

import (
	"context"
	"fmt"

	"vox/internal/domain/notification"
	vo "vox/internal/domain/notification/valueobjects"
	"vox/internal/domain/user"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

// EmailSender delivers a single message over the configured channel.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailJob is a deferred email delivery. Jobs accumulate in an Outbox
// during the write transaction and are sent only after it commits, so a
// rolled-back status change never emails anyone.
type EmailJob struct {
	To        string
	Subject   string
	Body      string
	Mandatory bool
}

// Outbox collects email jobs for one request. Not safe for concurrent
// use; each request builds its own.
type Outbox struct {
	jobs []EmailJob
}

func (o *Outbox) add(job EmailJob) {
	o.jobs = append(o.jobs, job)
}

func (o *Outbox) Jobs() []EmailJob {
	return o.jobs
}

// Notifier creates preference-gated in-app notifications and queues the
// matching emails. In-app inserts go through the repository and so join
// the caller's transaction; emails are flushed after commit.
type Notifier struct {
	users         user.Repository
	notifications notification.Repository
	email         EmailSender
	logger        logger.Interface
}

func NewNotifier(
	users user.Repository,
	notifications notification.Repository,
	email EmailSender,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		users:         users,
		notifications: notifications,
		email:         email,
		logger:        logger,
	}
}

// Deliver notifies a single recipient. A missing or deactivated
// recipient is a silent no-op: notification fan-out must never fail the
// triggering operation. Preference gating:
//   - in-app requires push notifications enabled, and for warning/error
//     severity additionally high-priority alerts enabled;
//   - email requires email notifications enabled, except mandatory
//     deliveries which bypass the preference.
func (n *Notifier) Deliver(
	ctx context.Context,
	out *Outbox,
	recipientID uint,
	feedbackID *uint,
	title, message string,
	severity vo.Severity,
	mandatoryEmail bool,
) error {
	recipient, err := n.users.GetByID(ctx, recipientID)
	if err != nil {
		n.logger.Warnw("notification recipient not found, skipping", "user_id", recipientID, "error", err)
		return nil
	}
	if !recipient.IsActive() {
		n.logger.Debugw("skipping notification for deactivated user", "user_id", recipientID)
		return nil
	}

	prefs := recipient.Preferences()

	if prefs.PushEnabled && (!severity.IsHighPriority() || prefs.HighPriorityAlertsEnabled) {
		entry, err := notification.NewNotification(recipientID, feedbackID, title, message, severity)
		if err != nil {
			return errors.NewInternalError("failed to build notification", err.Error())
		}
		if err := n.notifications.Create(ctx, entry); err != nil {
			return err
		}
	}

	if mandatoryEmail || prefs.EmailEnabled {
		out.add(EmailJob{
			To:        recipient.Email(),
			Subject:   title,
			Body:      message,
			Mandatory: mandatoryEmail,
		})
	}

	return nil
}

// DeliverToRole fans a notification out to every active user holding
// the role, optionally narrowed by department.
func (n *Notifier) DeliverToRole(
	ctx context.Context,
	out *Outbox,
	role authorization.Role,
	department string,
	feedbackID *uint,
	title, message string,
	severity vo.Severity,
) error {
	recipients, err := n.users.ListByRole(ctx, role, department)
	if err != nil {
		n.logger.Warnw("failed to resolve fan-out recipients, skipping", "role", role, "error", err)
		return nil
	}

	for _, recipient := range recipients {
		if err := n.Deliver(ctx, out, recipient.ID(), feedbackID, title, message, severity, false); err != nil {
			return err
		}
	}
	return nil
}

// Flush sends queued emails. Call only after the surrounding
// transaction committed. A failed optional email is logged and dropped;
// a failed mandatory email surfaces as a dependency error so the caller
// can report partial delivery.
func (n *Notifier) Flush(ctx context.Context, out *Outbox) error {
	for _, job := range out.jobs {
		if err := n.email.Send(ctx, job.To, job.Subject, job.Body); err != nil {
			if job.Mandatory {
				n.logger.Errorw("mandatory email delivery failed", "to", job.To, "error", err)
				return errors.NewDependencyUnavailableError(
					"email delivery failed",
					fmt.Sprintf("recipient %s: %v", job.To, err),
				)
			}
			n.logger.Warnw("email delivery failed, dropping", "to", job.To, "error", err)
		}
	}
	out.jobs = nil
	return nil
}
