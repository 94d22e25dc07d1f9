package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/catalog"
	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/event"
	"moviebooking/internal/lock"
	"moviebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// store is an in-memory stand-in for Postgres shared by the fake repos.
type store struct {
	mu      sync.Mutex
	movies  []*entity.Movie
	tickets []*entity.Ticket
	users   []*entity.User
	roles   []*entity.Role
	reviews []*entity.Review

	failTicketCreate bool
	failFindAll      bool
	// simulates a unique index hit from a concurrent insert
	duplicateUserCreate bool
}

func newStore() *store {
	s := &store{}
	for _, name := range entity.AllRoles {
		s.roles = append(s.roles, &entity.Role{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:       name,
		})
	}
	return s
}

func (s *store) addMovie(name, theatre string, available int) *entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := time.Now().Add(time.Duration(len(s.movies)) * time.Millisecond)
	m := &entity.Movie{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		MovieName:        name,
		TheatreName:      theatre,
		TicketsAvailable: available,
		TicketStatus:     entity.TicketStatusFor(available),
	}
	s.movies = append(s.movies, m)
	return m
}

func (s *store) addUser(username, password string) *entity.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Username:     username,
		FirstName:    "Test",
		LastName:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Roles:        []entity.Role{*s.roles[0]},
	}
	s.users = append(s.users, u)
	return u
}

func (s *store) movie(id uuid.UUID) *entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.ID == id {
			cp := *m
			return &cp
		}
	}
	return nil
}

func (s *store) ticketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *store) repository() *repository.Repository {
	return &repository.Repository{
		User:   &fakeUserRepo{s},
		Role:   &fakeRoleRepo{s},
		Movie:  &fakeMovieRepo{s},
		Ticket: &fakeTicketRepo{s},
		Review: &fakeReviewRepo{s},
	}
}

// ---------------- movies ----------------

type fakeMovieRepo struct{ s *store }

func copyMovies(in []*entity.Movie) []*entity.Movie {
	out := make([]*entity.Movie, 0, len(in))
	for _, m := range in {
		cp := *m
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *fakeMovieRepo) filter(keep func(*entity.Movie) bool) []*entity.Movie {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var hits []*entity.Movie
	for _, m := range r.s.movies {
		if keep(m) {
			hits = append(hits, m)
		}
	}
	return copyMovies(hits)
}

func (r *fakeMovieRepo) CreateBatch(_ context.Context, movies []*entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movies = append(r.s.movies, movies...)
	return nil
}

func (r *fakeMovieRepo) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.movies)), nil
}

func (r *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	return r.s.movie(id), nil
}

func (r *fakeMovieRepo) FindAll(context.Context) ([]*entity.Movie, error) {
	if r.s.failFindAll {
		return nil, errors.New("connection refused")
	}
	return r.filter(func(*entity.Movie) bool { return true }), nil
}

func (r *fakeMovieRepo) SearchByName(_ context.Context, fragment string) ([]*entity.Movie, error) {
	if r.s.failFindAll {
		return nil, errors.New("connection refused")
	}
	return r.filter(func(m *entity.Movie) bool { return utils.ContainsFold(m.MovieName, fragment) }), nil
}

func (r *fakeMovieRepo) FindByName(_ context.Context, name string) ([]*entity.Movie, error) {
	return r.filter(func(m *entity.Movie) bool { return m.MovieName == name }), nil
}

func (r *fakeMovieRepo) FindByNameAndTheatre(_ context.Context, name, theatre string) ([]*entity.Movie, error) {
	return r.filter(func(m *entity.Movie) bool { return m.MovieName == name && m.TheatreName == theatre }), nil
}

func (r *fakeMovieRepo) update(id uuid.UUID, fn func(*entity.Movie) bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movies {
		if m.ID == id {
			return fn(m), nil
		}
	}
	return false, fmt.Errorf("movie %s: %w", id, repository.ErrNotFound)
}

func (r *fakeMovieRepo) DecrementAvailability(_ context.Context, id uuid.UUID, n int) (bool, error) {
	ok, err := r.update(id, func(m *entity.Movie) bool {
		if m.TicketsAvailable < n {
			return false
		}
		m.TicketsAvailable -= n
		return true
	})
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return ok, err
}

func (r *fakeMovieRepo) IncrementAvailability(_ context.Context, id uuid.UUID, n int) error {
	_, err := r.update(id, func(m *entity.Movie) bool { m.TicketsAvailable += n; return true })
	return err
}

func (r *fakeMovieRepo) UpdateTicketStatus(_ context.Context, id uuid.UUID, status entity.TicketStatus) error {
	_, err := r.update(id, func(m *entity.Movie) bool { m.TicketStatus = status; return true })
	return err
}

func (r *fakeMovieRepo) UpdateRating(_ context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	_, err := r.update(id, func(m *entity.Movie) bool {
		m.Rating = rating
		m.ReviewCount = reviewCount
		return true
	})
	return err
}

func (r *fakeMovieRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.movies[:0]
	var n int64
	for _, m := range r.s.movies {
		if m.MovieName == name {
			n++
			continue
		}
		kept = append(kept, m)
	}
	r.s.movies = kept
	return n, nil
}

// ---------------- tickets ----------------

type fakeTicketRepo struct{ s *store }

func (r *fakeTicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	if r.s.failTicketCreate {
		return errors.New("insert failed")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *t
	r.s.tickets = append(r.s.tickets, &cp)
	return nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tickets {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTicketRepo) find(keep func(*entity.Ticket) bool) []*entity.Ticket {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Ticket
	for _, t := range r.s.tickets {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out
}

func (r *fakeTicketRepo) FindByMovieAndTheatre(_ context.Context, movieName, theatreName string) ([]*entity.Ticket, error) {
	return r.find(func(t *entity.Ticket) bool { return t.MovieName == movieName && t.TheatreName == theatreName }), nil
}

func (r *fakeTicketRepo) FindByMovieName(_ context.Context, movieName string) ([]*entity.Ticket, error) {
	return r.find(func(t *entity.Ticket) bool { return t.MovieName == movieName }), nil
}

// ---------------- users / roles ----------------

type fakeUserRepo struct{ s *store }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.duplicateUserCreate {
		return fmt.Errorf("create user %s: %w", u.Username, repository.ErrDuplicate)
	}
	cp := *u
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := r.FindByUsername(ctx, username)
	return u != nil, err
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

type fakeRoleRepo struct{ s *store }

func (r *fakeRoleRepo) Create(_ context.Context, role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.roles {
		if existing.Name == role.Name {
			return nil
		}
	}
	r.s.roles = append(r.s.roles, role)
	return nil
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name entity.UserRole) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

// ---------------- reviews ----------------

type fakeReviewRepo struct{ s *store }

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *review
	r.s.reviews = append(r.s.reviews, &cp)
	return nil
}

func (r *fakeReviewRepo) ExistsByUserAndMovie(_ context.Context, userID, movieID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.reviews {
		if rv.UserID == userID && rv.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) details(keep func(*entity.Review) bool) []*entity.ReviewDetail {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ReviewDetail
	for _, rv := range r.s.reviews {
		if !keep(rv) {
			continue
		}
		d := &entity.ReviewDetail{Review: *rv}
		for _, u := range r.s.users {
			if u.ID == rv.UserID {
				d.Username, d.UserFirstName, d.UserLastName = u.Username, u.FirstName, u.LastName
			}
		}
		for _, m := range r.s.movies {
			if m.ID == rv.MovieID {
				d.MovieName = m.MovieName
			}
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeReviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.ReviewDetail, error) {
	return r.details(func(rv *entity.Review) bool { return rv.MovieID == movieID }), nil
}

func (r *fakeReviewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.ReviewDetail, error) {
	return r.details(func(rv *entity.Review) bool { return rv.UserID == userID }), nil
}

func (r *fakeReviewRepo) IncrementHelpful(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.reviews {
		if rv.ID == id {
			rv.Helpful++
			return nil
		}
	}
	return fmt.Errorf("review %s: %w", id, repository.ErrNotFound)
}

func (r *fakeReviewRepo) GetMovieRatingStats(_ context.Context, movieID uuid.UUID) (float64, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum float64
	var n int
	for _, rv := range r.s.reviews {
		if rv.MovieID == movieID {
			sum += rv.Rating
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return sum / float64(n), n, nil
}

// ---------------- infra ----------------

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.TicketBookedEvent
}

func (p *recordingPublisher) PublishTicketBooked(_ context.Context, ev event.TicketBookedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type fixture struct {
	store     *store
	repo      *repository.Repository
	publisher *recordingPublisher
	svc       *Service
}

func testConfig() *utils.Config {
	return &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
}

func newFixture() *fixture {
	s := newStore()
	repo := s.repository()
	pub := &recordingPublisher{}
	log := zap.NewNop()
	movieCache := cache.NewMovieCache(nil, 0, log)

	svc := NewService(repo, Dependencies{
		Locker:    lock.NewLocalLocker(),
		Cache:     movieCache,
		Catalog:   catalog.NewStoreCatalog(repo.Movie, movieCache),
		Publisher: pub,
	}, testConfig(), log)

	return &fixture{store: s, repo: repo, publisher: pub, svc: svc}
}
