package gdpr_test

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
)

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]gdpr.User
	deleted []int64
	err     error
}

func newFakeUsers(users ...gdpr.User) *fakeUsers {
	f := &fakeUsers{byEmail: make(map[string]gdpr.User)}
	for _, u := range users {
		f.byEmail[strings.ToLower(u.Email)] = u
	}
	return f
}

func (f *fakeUsers) UserByEmail(_ context.Context, email string) (gdpr.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return gdpr.User{}, f.err
	}
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return gdpr.User{}, gdpr.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) UserByID(_ context.Context, id int64) (gdpr.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return gdpr.User{}, gdpr.ErrUserNotFound
}

func (f *fakeUsers) DeleteUser(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, k)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return gdpr.ErrUserNotFound
}

type fakeContent struct {
	postTypes []string
	// posts[userID][postType] = count
	posts    map[int64]map[string]int
	comments map[string]int
	err      error
}

func (f *fakeContent) PublicPostTypes(context.Context) ([]string, error) {
	return f.postTypes, f.err
}

func (f *fakeContent) CountUserPosts(_ context.Context, userID int64, postType string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.posts[userID][postType], nil
}

func (f *fakeContent) CountCommentsByEmail(_ context.Context, email string, _ bool) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.comments[strings.ToLower(email)], nil
}
