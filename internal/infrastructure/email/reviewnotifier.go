package email

import (
	"context"
	"fmt"
	"html"

	"stratplan/internal/application/plan/usecases"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

var _ usecases.ReviewNotifier = (*ReviewNotifier)(nil)

// ReviewNotifier mails the planner of a plan once an evaluator decides.
// Planners without an e-mail address are skipped.
type ReviewNotifier struct {
	mailer   *Mailer
	users    user.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewReviewNotifier(mailer *Mailer, users user.Repository, renderer markdown.Renderer, log logger.Interface) *ReviewNotifier {
	return &ReviewNotifier{
		mailer:   mailer,
		users:    users,
		renderer: renderer,
		logger:   log.With("component", "email.review_notifier"),
	}
}

func (n *ReviewNotifier) NotifyReviewed(ctx context.Context, note usecases.ReviewNotification) error {
	planner, err := n.users.GetByID(ctx, note.Plan.PlannerID())
	if err != nil {
		return fmt.Errorf("failed to load planner: %w", err)
	}
	if planner.Email() == "" {
		n.logger.Debugw("planner has no email address, skipping review notification",
			"plan_id", note.Plan.ID(), "user_id", planner.ID())
		return nil
	}

	feedbackHTML, err := n.renderer.Render(note.Review.Feedback())
	if err != nil {
		return err
	}

	status := note.Review.Status().String()
	fy := note.Plan.Details().FiscalYear
	subject := fmt.Sprintf("Plan #%d (%s) %s", note.Plan.ID(), fy, status)
	link := n.mailer.PlanLink(note.Plan.ID())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your plan was %s</h2>
			<p>Hello %s,</p>
			<p>Plan #%d for fiscal year %s has been reviewed.</p>
			%s
			<p><a href="%s">Open the plan</a></p>
		</body>
		</html>
	`, status, html.EscapeString(planner.DisplayName()), note.Plan.ID(), html.EscapeString(fy), feedbackSection(feedbackHTML), link)

	plainBody := fmt.Sprintf(`
Your plan was %s

Hello %s,

Plan #%d for fiscal year %s has been reviewed.

Feedback:
%s

Open the plan: %s
	`, status, planner.DisplayName(), note.Plan.ID(), fy, note.Review.Feedback(), link)

	msg := Message{To: planner.Email(), Subject: subject, Plain: plainBody, HTML: htmlBody}
	if err := n.mailer.Send(msg); err != nil {
		return err
	}

	n.logger.Infow("review notification sent", "plan_id", note.Plan.ID(), "user_id", planner.ID(), "status", status)
	return nil
}

func feedbackSection(feedbackHTML string) string {
	if feedbackHTML == "" {
		return ""
	}
	return "<h3>Feedback</h3>\n" + feedbackHTML
}
