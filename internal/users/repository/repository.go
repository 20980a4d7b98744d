package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
)

const userNotFoundMessage = "user not found"

// User is the stored account document. Accounts are created on first
// sign-in; the role starts as "user" and is only ever changed directly
// in the store.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	PhotoURL  string             `bson:"photoURL" json:"photoURL"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repo implements the users repository over the document store.
type Repo struct {
	store *store.Store
}

// New creates a new users repository.
func New(st *store.Store) *Repo {
	return &Repo{store: st}
}

var _ Repository = (*Repo)(nil)

// GetByEmail fetches a user by their unique email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.store.FindOne(ctx, store.CollUsers, bson.M{"email": email}, &u)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, err
	}
	return u, nil
}

// Create inserts a new user and returns its generated id.
func (r *Repo) Create(ctx context.Context, u User) (primitive.ObjectID, error) {
	return r.store.InsertOne(ctx, store.CollUsers, u)
}

func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	// Search terms are literal substrings, never regex syntax.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"email": pattern},
	}}
}

// List returns users, optionally filtered by a case-insensitive substring
// match on name or email, newest first.
func (r *Repo) List(ctx context.Context, search string) ([]User, error) {
	users := []User{}
	opts := store.FindOptions{SortField: "createdAt", SortDesc: true}
	if err := r.store.FindMany(ctx, store.CollUsers, searchFilter(search), opts, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies a partial update to the user with the given email
// and returns the modified count.
func (r *Repo) UpdateProfile(ctx context.Context, email string, set bson.M) (int64, error) {
	return r.store.UpdateOne(ctx, store.CollUsers, bson.M{"email": email}, set)
}

// Delete removes a user by id and returns the deleted count.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.store.DeleteOne(ctx, store.CollUsers, bson.M{"_id": id})
}
