package server

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rpchat/internal/models"
	"rpchat/internal/repository"
)

// memStore is an in-memory stand-in for PostgreSQL that keeps the same
// constraints the schema enforces.
type memStore struct {
	mu         sync.Mutex
	seq        int64
	clock      time.Time
	users      []models.User
	characters []models.Character
	locations  []models.Location
	messages   []models.Message
	posts      []models.Post
}

func newMemRepository() *repository.Repository {
	s := &memStore{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return &repository.Repository{
		User:      &memUsers{s},
		Character: &memCharacters{s},
		Location:  &memLocations{s},
		Message:   &memMessages{s},
		Post:      &memPosts{s},
		Tables:    memTables{},
	}
}

func (s *memStore) next() (int64, time.Time) {
	s.seq++
	s.clock = s.clock.Add(time.Second)
	return s.seq, s.clock
}

func (s *memStore) character(id int64) (models.Character, bool) {
	for _, c := range s.characters {
		if c.ID == id {
			return c, true
		}
	}
	return models.Character{}, false
}

func (s *memStore) location(id int64) (models.Location, bool) {
	for _, l := range s.locations {
		if l.ID == id {
			return l, true
		}
	}
	return models.Location{}, false
}

func (s *memStore) userExists(id int64) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

type memUsers struct{ s *memStore }

func (r *memUsers) CreateUser(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("failed to create user: %w", repository.ErrDuplicate)
		}
	}
	id, now := r.s.next()
	user.ID, user.CreatedAt, user.LastLogin = id, now, &now
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *memUsers) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, repository.ErrNotFound)
}

func (r *memUsers) GetUserBySessionToken(_ context.Context, token string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.SessionToken != nil && *u.SessionToken == token {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("session: %w", repository.ErrNotFound)
}

func (r *memUsers) UpdateSessionToken(_ context.Context, userID int64, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == userID {
			_, now := r.s.next()
			r.s.users[i].SessionToken = &token
			r.s.users[i].LastLogin = &now
			return nil
		}
	}
	return fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
}

type memCharacters struct{ s *memStore }

func (r *memCharacters) Create(_ context.Context, character *models.Character) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.userExists(character.UserID) {
		return fmt.Errorf("failed to create character: %w", repository.ErrForeignKey)
	}
	character.ID, character.CreatedAt = r.s.next()
	r.s.characters = append(r.s.characters, *character)
	return nil
}

func (r *memCharacters) GetByID(_ context.Context, characterID int64) (*models.Character, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.character(characterID); ok {
		return &c, nil
	}
	return nil, fmt.Errorf("character %d: %w", characterID, repository.ErrNotFound)
}

func (r *memCharacters) List(ctx context.Context) ([]models.Character, error) {
	return r.filter(func(models.Character) bool { return true }), nil
}

func (r *memCharacters) ListByUserID(_ context.Context, userID int64) ([]models.Character, error) {
	return r.filter(func(c models.Character) bool { return c.UserID == userID }), nil
}

func (r *memCharacters) filter(keep func(models.Character) bool) []models.Character {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Character{}
	for _, c := range r.s.characters {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

type memLocations struct{ s *memStore }

func (r *memLocations) Create(_ context.Context, location *models.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.userExists(location.UserID) {
		return fmt.Errorf("failed to create location: %w", repository.ErrForeignKey)
	}
	location.ID, location.CreatedAt = r.s.next()
	r.s.locations = append(r.s.locations, *location)
	return nil
}

func (r *memLocations) ListWithMessageCount(_ context.Context) ([]models.LocationSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.LocationSummary{}
	for _, l := range r.s.locations {
		summary := models.LocationSummary{Location: l}
		for _, m := range r.s.messages {
			if m.LocationID == l.ID {
				summary.MessageCount++
			}
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memMessages struct{ s *memStore }

func (r *memMessages) Create(_ context.Context, message *models.Message) (*models.MessageView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.character(message.CharacterID)
	if _, locOK := r.s.location(message.LocationID); !ok || !locOK {
		return nil, fmt.Errorf("failed to create message: %w", repository.ErrForeignKey)
	}
	message.ID, message.CreatedAt = r.s.next()
	r.s.messages = append(r.s.messages, *message)
	return &models.MessageView{Message: *message, CharacterName: c.Name, CharacterAvatar: c.Avatar}, nil
}

func (r *memMessages) ListByLocationID(_ context.Context, locationID int64) ([]models.MessageView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.MessageView{}
	for _, m := range r.s.messages {
		if m.LocationID != locationID {
			continue
		}
		c, _ := r.s.character(m.CharacterID)
		out = append(out, models.MessageView{Message: m, CharacterName: c.Name, CharacterAvatar: c.Avatar})
	}
	return out, nil
}

type memPosts struct{ s *memStore }

func (r *memPosts) Create(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, charOK := r.s.character(post.CharacterID)
	if _, locOK := r.s.location(post.LocationID); !charOK || !locOK {
		return fmt.Errorf("failed to create post: %w", repository.ErrForeignKey)
	}
	post.ID, post.CreatedAt = r.s.next()
	r.s.posts = append(r.s.posts, *post)
	return nil
}

func (r *memPosts) List(_ context.Context) ([]models.PostView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.PostView{}
	for i := len(r.s.posts) - 1; i >= 0; i-- {
		p := r.s.posts[i]
		c, _ := r.s.character(p.CharacterID)
		l, _ := r.s.location(p.LocationID)
		out = append(out, models.PostView{Post: p, CharacterName: c.Name, CharacterAvatar: c.Avatar, LocationName: l.Name})
	}
	return out, nil
}

type memTables struct{}

func (memTables) CountTablesDB(context.Context) (int, error) { return 6, nil }

type healthyDB struct{}

func (healthyDB) HealthCheck(context.Context) error { return nil }
