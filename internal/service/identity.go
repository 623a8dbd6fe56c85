package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mhollis/gardenshare/internal/domain"
)

// Avatar assigned to every new gardener. Purely cosmetic.
const defaultAvatarURL = "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop"

// unknownUserName is the fallback shown when an activity or entry refers
// to a user id that no longer resolves.
const unknownUserName = "Unknown Gardener"

// IdentityService handles the household sign-in flow and session tokens.
// Sign-in is deliberately trust-based: an email plus a display name is
// enough, and repeated logins with a known email return the existing
// record untouched.
type IdentityService struct {
	store     domain.DataStore
	jwtSecret []byte
	now       func() time.Time
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(store domain.DataStore, jwtSecret string) *IdentityService {
	return &IdentityService{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// LoginUser resolves the user for the given email, creating one on first
// login. The display name is first-write-wins: logging in again with the
// same email and a different name does not update the stored name. The
// resolved user becomes the current user.
func (s *IdentityService) LoginUser(ctx context.Context, email, name string) (*domain.User, error) {
	if email == "" || name == "" {
		return nil, fmt.Errorf("%w: email and name are required", domain.ErrInvalidInput)
	}

	data := s.store.Load(ctx)

	user := data.FindUserByEmail(email)
	if user == nil {
		data.Users = append(data.Users, domain.User{
			ID:       domain.NewID(),
			Email:    email,
			Name:     name,
			JoinDate: s.now().UTC().Format(time.RFC3339),
			Avatar:   defaultAvatarURL,
		})
		user = &data.Users[len(data.Users)-1]
	}

	id := user.ID
	data.CurrentUserID = &id
	s.store.Save(ctx, data)

	resolved := *user
	return &resolved, nil
}

// LogoutUser clears the current user.
func (s *IdentityService) LogoutUser(ctx context.Context) {
	data := s.store.Load(ctx)
	data.CurrentUserID = nil
	s.store.Save(ctx, data)
}

// GetCurrentUser resolves the current user id against the user list.
// Returns nil when no one is signed in or the id is dangling.
func (s *IdentityService) GetCurrentUser(ctx context.Context) *domain.User {
	data := s.store.Load(ctx)
	if data.CurrentUserID == nil {
		return nil
	}
	return data.FindUserByID(*data.CurrentUserID)
}

// GetUserByID returns the user with the given id, or nil.
func (s *IdentityService) GetUserByID(ctx context.Context, id string) *domain.User {
	return s.store.Load(ctx).FindUserByID(id)
}

// UserName returns the display name for a user id, with a fallback for
// ids that no longer resolve.
func (s *IdentityService) UserName(ctx context.Context, userID string) string {
	if user := s.store.Load(ctx).FindUserByID(userID); user != nil {
		return user.Name
	}
	return unknownUserName
}

// GenerateToken returns a signed session token for the given user.
func (s *IdentityService) GenerateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and validates a session token string.
// Returns the user ID from the sub claim.
func (s *IdentityService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}

	return sub, nil
}
