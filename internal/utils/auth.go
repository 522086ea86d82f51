package utils

import "context"

// SetAuthContext stores the authenticated caller (called by middleware).
func SetAuthContext(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, SubjectKey, subject)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(SubjectKey).(string)
	return sub, ok && sub != ""
}

func GetRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return GetRoleFromContext(ctx) == RoleAdmin
}
