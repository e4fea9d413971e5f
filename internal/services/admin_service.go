// Package services – AdminService
//
// This file implements the admin directory facade: it lists the members of
// the configured identity group and flattens their attribute lists into the
// {username, fullName, email} shape consumed by the frontend. Pagination of
// the upstream listing is deliberately not followed.
package services

import (
	"context"

	"github.com/medreg/revalidation-backend/internal/clients"
)

// Admin is one assignable admin as exposed by the directory endpoint.
type Admin struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// IdentityDirectory is the identity-provider capability consumed by
// AdminService. See clients.IdentityClient.
type IdentityDirectory interface {
	ListGroupUsers(ctx context.Context, group, userPool string) ([]clients.IdentityUser, error)
}

// AdminService resolves the assignable admins from the identity provider.
type AdminService struct {
	Directory IdentityDirectory
	Group     string
	UserPool  string
}

// AssignableAdmins lists the members of the configured admin group. Errors
// from the identity provider propagate; there is no degraded mode here.
func (s *AdminService) AssignableAdmins(ctx context.Context) ([]Admin, error) {
	users, err := s.Directory.ListGroupUsers(ctx, s.Group, s.UserPool)
	if err != nil {
		return nil, err
	}

	admins := make([]Admin, 0, len(users))
	for _, u := range users {
		admins = append(admins, Admin{
			Username: u.Username,
			FullName: fullName(u.Attributes),
			Email:    attribute(u.Attributes, "email"),
		})
	}
	return admins, nil
}

// fullName joins the given_name and family_name attributes. Either part may
// be missing; the join keeps the single separating space regardless, which
// matches what the directory has always displayed.
func fullName(attrs []clients.IdentityAttribute) string {
	return attribute(attrs, "given_name") + " " + attribute(attrs, "family_name")
}

// attribute returns the value of the first attribute with the given name,
// or "" when absent.
func attribute(attrs []clients.IdentityAttribute, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}
