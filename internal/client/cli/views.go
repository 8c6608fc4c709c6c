package cli

import (
	"context"
	"fmt"

	"github.com/minsu-cho/sajubook/internal/client/routing"
)

// Go navigates to the view at path. The route guard runs first; a denied
// navigation prints the redirect and renders the substitute view instead.
func (a *App) Go(ctx context.Context, path string) error {
	route, ok := routing.Lookup(path)
	if !ok {
		fmt.Fprintf(a.out, "No such view: %s (try 'routes')\n", path)
		return nil
	}

	snap, err := a.auth.Snapshot(ctx)
	if err != nil {
		return err
	}

	verdict := a.guard.Evaluate(route, snap)
	if !verdict.Allowed() {
		fmt.Fprintf(a.out, "Access to %s requires %s, redirecting to %s\n",
			route.Path, route.Requirement(), verdict.RedirectPath())
		return a.Go(ctx, verdict.RedirectPath())
	}

	return a.render(ctx, route)
}

// Routes lists every view together with its access class and whether the
// current session would be let in.
func (a *App) Routes(ctx context.Context) error {
	snap, err := a.auth.Snapshot(ctx)
	if err != nil {
		return err
	}

	for _, route := range routing.Routes {
		verdict := a.guard.Evaluate(route, snap)
		mark := " "
		if verdict.Allowed() {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %-22s %-20s %s\n", mark, route.Path, route.Name, route.Requirement())
	}
	return nil
}

func (a *App) render(ctx context.Context, route routing.Route) error {
	var err error
	switch route.Name {
	case "home":
		fmt.Fprintln(a.out, "SajuBook: counseling reservations. Try 'go /counselors'.")
	case "login":
		err = a.Login(ctx)
	case "signup":
		err = a.Signup(ctx)
	case "counselor-list":
		err = a.renderCounselors(ctx)
	case "counselor-detail":
		err = a.renderCounselorDetail(ctx)
	case "my-reservations":
		err = a.renderReservations(ctx)
	case "my-payments":
		err = a.renderPayments(ctx)
	case "my-reviews":
		err = a.renderReviews(ctx)
	case "notifications":
		err = a.renderNotifications(ctx)
	case "favorites":
		err = a.renderFavorites(ctx)
	case "role-request":
		err = a.renderRoleRequest(ctx)
	case "counselor-dashboard":
		err = a.renderDashboard(ctx)
	case "counselor-profile":
		err = a.renderOwnProfile(ctx)
	case "admin-users":
		err = a.renderAdminUsers(ctx)
	case "admin-payments":
		err = a.renderAdminPayments(ctx)
	case "admin-reviews":
		err = a.renderAdminReviews(ctx)
	case "admin-role-requests":
		err = a.renderAdminRoleRequests(ctx)
	default:
		fmt.Fprintf(a.out, "View %s has no renderer yet\n", route.Name)
	}

	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
	}
	return err
}

func (a *App) renderCounselors(ctx context.Context) error {
	counselors, err := a.api.Counselors(ctx)
	if err != nil {
		return err
	}
	if len(counselors) == 0 {
		fmt.Fprintln(a.out, "No counselors registered")
		return nil
	}
	for _, c := range counselors {
		fmt.Fprintf(a.out, "#%-4d %-20s %.1f★ (%d reviews)\n", c.ID, c.Name, c.AverageRating, c.ReviewCount)
	}
	return nil
}

func (a *App) renderCounselorDetail(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Enter counselor id", a.out)
	if err != nil {
		return err
	}

	profile, err := a.api.CounselorProfile(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", profile.CounselorName)
	if profile.Bio != "" {
		fmt.Fprintln(a.out, profile.Bio)
	}
	if len(profile.Tags) > 0 {
		fmt.Fprintf(a.out, "tags: %v\n", profile.Tags)
	}
	fmt.Fprintf(a.out, "%.1f★ over %d reviews\n", profile.AverageRating, profile.ReviewCount)
	for _, r := range profile.Reviews {
		fmt.Fprintf(a.out, "  %d★ %s\n", r.Rating, r.Comment)
	}
	return nil
}

func (a *App) renderReservations(ctx context.Context) error {
	reservations, err := a.api.MyReservations(ctx)
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		fmt.Fprintln(a.out, "No reservations")
		return nil
	}
	for _, r := range reservations {
		fmt.Fprintf(a.out, "#%-4d counselor=%d at %s [%s]\n", r.ID, r.CounselorID, r.ReservationTime, r.Status)
	}
	return nil
}

func (a *App) renderPayments(ctx context.Context) error {
	payments, err := a.api.MyPayments(ctx)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		fmt.Fprintln(a.out, "No payments")
		return nil
	}
	for _, p := range payments {
		fmt.Fprintf(a.out, "#%-4d reservation=%d %d KRW [%s]\n", p.ID, p.ReservationID, p.Amount, p.Status)
	}
	return nil
}

func (a *App) renderReviews(ctx context.Context) error {
	reviews, err := a.api.MyReviews(ctx)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintf(a.out, "#%-4d %d★ %s\n", r.ID, r.Rating, r.Comment)
	}
	return nil
}

func (a *App) renderNotifications(ctx context.Context) error {
	unread, err := a.api.UnreadNotificationCount(ctx)
	if err != nil {
		return err
	}
	page, err := a.api.MyNotifications(ctx, 0, 20)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d unread, %d total\n", unread, page.TotalElements)
	for _, n := range page.Content {
		mark := " "
		if !n.Read {
			mark = "●"
		}
		fmt.Fprintf(a.out, "%s [%s] %s\n", mark, n.Type, n.Message)
	}
	return nil
}

func (a *App) renderFavorites(ctx context.Context) error {
	favorites, err := a.api.MyFavorites(ctx)
	if err != nil {
		return err
	}
	if len(favorites) == 0 {
		fmt.Fprintln(a.out, "No favorites")
		return nil
	}
	for _, c := range favorites {
		fmt.Fprintf(a.out, "#%-4d %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *App) renderRoleRequest(ctx context.Context) error {
	req, err := a.api.RequestCounselorRole(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Counselor role requested, request #%d is %s\n", req.RequestID, req.Status)
	return nil
}

func (a *App) renderDashboard(ctx context.Context) error {
	entries, err := a.api.TodayDashboard(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No sessions scheduled today")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%s %s [%s]\n", e.ReservationTime, e.UserName, e.Status)
	}
	return nil
}

func (a *App) renderOwnProfile(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	profile, err := a.api.CounselorProfile(ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\nbio: %s\nexperience: %s\ntags: %v\n",
		profile.CounselorName, profile.Bio, profile.Experience, profile.Tags)
	return nil
}

func (a *App) renderAdminUsers(ctx context.Context) error {
	users, err := a.api.AllUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "#%-4d %-20s %-30s %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return nil
}

func (a *App) renderAdminPayments(ctx context.Context) error {
	payments, err := a.api.AllPayments(ctx, "")
	if err != nil {
		return err
	}
	for _, p := range payments {
		fmt.Fprintf(a.out, "#%-4d reservation=%d %d KRW [%s]\n", p.ID, p.ReservationID, p.Amount, p.Status)
	}
	return nil
}

func (a *App) renderAdminReviews(ctx context.Context) error {
	reviews, err := a.api.AllReviews(ctx)
	if err != nil {
		return err
	}
	for _, r := range reviews {
		fmt.Fprintf(a.out, "#%-4d user=%d %d★ %s\n", r.ID, r.UserID, r.Rating, r.Comment)
	}
	return nil
}

func (a *App) renderAdminRoleRequests(ctx context.Context) error {
	requests, err := a.api.PendingRoleRequests(ctx)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Fprintln(a.out, "No pending role requests")
		return nil
	}
	for _, r := range requests {
		fmt.Fprintf(a.out, "#%-4d %s <%s> wants %s [%s]\n",
			r.RequestID, r.UserName, r.UserEmail, r.RequestedRole, r.Status)
	}
	return nil
}
