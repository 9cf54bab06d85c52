package gamestate

import (
	"sync"

	"github.com/charmbracelet/log"
)

// BaseSpeed is the scroll speed every run starts at.
const BaseSpeed = 5.0

// Storage is the key-value store the high score is persisted in.
// Get reports ok == false when the key has never been written.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Snapshot is a point-in-time copy of the store, safe to hand to renderers.
type Snapshot struct {
	Status       Status
	Score        int
	HighScore    int
	Speed        float64
	Distance     float64
	IsJumping    bool
	IsInvincible bool
}

// Store is the single source of truth for run and session state.
// Create one per session with New and pass it to whatever draws or drives
// the game. All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	status       Status
	score        int
	highScore    int
	speed        float64
	distance     float64
	isJumping    bool
	isInvincible bool

	storage   Storage
	key       string
	baseSpeed float64
	logger    *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBaseSpeed overrides the speed a run starts at.
func WithBaseSpeed(speed float64) Option {
	return func(s *Store) {
		if speed > 0 {
			s.baseSpeed = speed
		}
	}
}

// WithKey overrides the storage key of the high score.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates an idle store and loads the persisted high score from storage.
// A missing, unreadable or malformed value starts the high score at 0.
// storage may be nil, in which case nothing is loaded or persisted.
func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		status:    StatusIdle,
		storage:   storage,
		key:       HighScoreKey,
		baseSpeed: BaseSpeed,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.speed = s.baseSpeed
	s.highScore = s.loadHighScore()
	return s
}

func (s *Store) loadHighScore() int {
	if s.storage == nil {
		return 0
	}

	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn("could not read high score", "key", s.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	hs := ParseHighScore(raw)
	s.logger.Debug("loaded high score", "key", s.key, "raw", raw, "value", hs)
	return hs
}

// StartGame begins a new run from any state.
func (s *Store) StartGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusPlaying
	s.score = 0
	s.distance = 0
	s.speed = s.baseSpeed
}

// IncrementScore adds val to the score. Negative values are accepted.
//
// When the new score beats the high score, the high score becomes val, not
// the new score, and is written to storage. Callers that award one point per
// event therefore see a high score of 1 after any winning run.
func (s *Store) IncrementScore(val int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.score += val
	if s.score <= s.highScore {
		return
	}

	s.highScore = val
	s.persistHighScore()
}

func (s *Store) persistHighScore() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Set(s.key, FormatHighScore(s.highScore)); err != nil {
		s.logger.Error("could not persist high score", "key", s.key, "value", s.highScore, "error", err)
	}
}

// GameOver ends the current run from any state.
func (s *Store) GameOver() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusGameOver
}

// SetJumping is toggled by whatever drives the dragon.
func (s *Store) SetJumping(v bool) {
	s.mu.Lock()
	s.isJumping = v
	s.mu.Unlock()
}

// SetInvincible is toggled by whatever drives the dragon.
func (s *Store) SetInvincible(v bool) {
	s.mu.Lock()
	s.isInvincible = v
	s.mu.Unlock()
}

// SetSpeed changes the current scroll speed. Non-positive values are ignored.
func (s *Store) SetSpeed(v float64) {
	if v <= 0 {
		return
	}
	s.mu.Lock()
	s.speed = v
	s.mu.Unlock()
}

// AddDistance advances the distance traveled in the current run.
// Negative deltas are ignored.
func (s *Store) AddDistance(d float64) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.distance += d
	s.mu.Unlock()
}

// Status returns the current phase.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Score returns the current run's score.
func (s *Store) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// HighScore returns the best score known to this session.
func (s *Store) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Speed returns the current scroll speed.
func (s *Store) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// Distance returns the distance traveled in the current run.
func (s *Store) Distance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.distance
}

// IsJumping reports the jump flag.
func (s *Store) IsJumping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isJumping
}

// IsInvincible reports the invincibility flag.
func (s *Store) IsInvincible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isInvincible
}

// Snapshot returns a copy of every field taken under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Status:       s.status,
		Score:        s.score,
		HighScore:    s.highScore,
		Speed:        s.speed,
		Distance:     s.distance,
		IsJumping:    s.isJumping,
		IsInvincible: s.isInvincible,
	}
}
