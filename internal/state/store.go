package state

import (
	"sync"

	"go.uber.org/zap"

	"github.com/five82/pokedex/internal/errors"
	"github.com/five82/pokedex/internal/pokeapi"
)

// Request identifies one issued lookup.
type Request struct {
	Seq   uint64
	Token string
}

// Snapshot is a copy of the store for rendering.
type Snapshot struct {
	Query    string
	Current  *pokeapi.Creature
	Party    []Entry
	Loading  bool
	Issued   uint64
	Applied  uint64
	LastSeq  uint64 // sequence of the lookup that produced Current (0 if none)
	LastFail string // token of the last applied failed lookup
}

// PartyFull reports whether no further capture is possible.
func (s Snapshot) PartyFull() bool {
	return len(s.Party) >= PartyCapacity
}

// Store owns the search text, the current result, the party and the
// notification outbox. Its methods are the only mutators.
type Store struct {
	mu sync.RWMutex

	log      *zap.Logger
	query    string
	current  *pokeapi.Creature
	party    Party
	issued   uint64
	applied  uint64
	lastSeq  uint64
	lastFail string
	tokens   map[uint64]string
	outbox   []Notice
}

// NewStore returns an empty store. A nil logger disables logging.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log, tokens: make(map[uint64]string)}
}

func (s *Store) logger() *zap.Logger {
	if s.log == nil {
		return zap.NewNop()
	}
	return s.log
}

// SetQuery records the raw search text.
func (s *Store) SetQuery(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = raw
}

// Query returns the raw search text.
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// BeginSearch validates raw and, when it is not blank, issues a new request
// sequence number and marks the store as loading. A blank query emits a
// warning and issues nothing.
func (s *Store) BeginSearch(raw string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = raw
	token := pokeapi.NormalizeToken(raw)
	if token == "" {
		s.emit(newNotice(SeverityWarning, TitleEmptyQuery, ""))
		s.logger().Debug("search rejected", zap.String("reason", "blank query"))
		return Request{}, errors.InvalidArgument("pokemon name or id required")
	}

	s.issued++
	if s.tokens == nil {
		s.tokens = make(map[uint64]string)
	}
	s.tokens[s.issued] = token
	s.logger().Info("search issued", zap.Uint64("seq", s.issued), zap.String("token", token))
	return Request{Seq: s.issued, Token: token}, nil
}

// CompleteSearch settles request seq. Results older than the newest applied
// one are discarded without touching state. A failure (err non-nil or a nil
// creature) clears the current result and emits one error notice; a success
// replaces it. It reports whether the result was applied.
func (s *Store) CompleteSearch(seq uint64, c *pokeapi.Creature, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.tokens[seq]
	delete(s.tokens, seq)

	if seq == 0 || seq > s.issued || seq <= s.applied {
		s.logger().Debug("stale search result discarded",
			zap.Uint64("seq", seq),
			zap.Uint64("applied", s.applied),
			zap.String("token", token))
		return false
	}
	s.applied = seq

	if err != nil || c == nil {
		s.current = nil
		s.lastSeq = 0
		s.lastFail = token
		s.emit(newNotice(SeverityError, TitleNotFound, DetailNotFound))
		s.logger().Warn("search failed",
			zap.Uint64("seq", seq),
			zap.String("token", token),
			zap.String("code", errors.GetCode(err).String()),
			zap.Error(err))
		return true
	}

	s.current = c.Clone()
	s.lastSeq = seq
	s.lastFail = ""
	s.logger().Info("search completed",
		zap.Uint64("seq", seq),
		zap.String("name", c.Name),
		zap.Int("id", c.ID))
	return true
}

// Loading reports whether the newest issued request has not settled yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issued > s.applied
}

// Current returns a copy of the current result, or nil.
func (s *Store) Current() *pokeapi.Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Stat returns the named stat of the current result, 0 when absent.
func (s *Store) Stat(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Stat(name)
}

// CanCapture reports whether Capture would append an entry.
func (s *Store) CanCapture() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && !s.party.Full()
}

// Capture appends a copy of the current result to the party. Without a
// current result it is a silent no-op; on a full party it emits a warning and
// leaves the party unchanged.
func (s *Store) Capture() (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Entry{}, errors.FailedPrecondition("no pokemon to capture")
	}
	entry, err := s.party.Add(s.current)
	if err != nil {
		if errors.IsResourceExhausted(err) {
			s.emit(newNotice(SeverityWarning, TitlePartyFull, DetailPartyFull))
			s.logger().Info("capture rejected",
				zap.String("name", s.current.Name),
				zap.Int("party", s.party.Len()))
		}
		return Entry{}, err
	}

	s.emit(newNotice(SeveritySuccess, entry.Creature.Name+" captured!", ""))
	s.logger().Info("captured",
		zap.String("entry", entry.ID),
		zap.String("name", entry.Creature.Name),
		zap.Int("party", s.party.Len()))
	return entry, nil
}

// Release removes the party entry at index.
func (s *Store) Release(index int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.party.Remove(index)
	if err != nil {
		return Entry{}, err
	}
	s.emit(newNotice(SeverityInfo, entry.Creature.Name+" released", ""))
	s.logger().Info("released",
		zap.String("entry", entry.ID),
		zap.String("name", entry.Creature.Name),
		zap.Int("position", index),
		zap.Int("party", s.party.Len()))
	return entry, nil
}

// Party returns a copy of the party entries.
func (s *Store) Party() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.party.Entries()
}

// Notices drains the notification outbox in emission order.
func (s *Store) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.outbox
	s.outbox = nil
	return out
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Query:    s.query,
		Current:  s.current.Clone(),
		Party:    s.party.Entries(),
		Loading:  s.issued > s.applied,
		Issued:   s.issued,
		Applied:  s.applied,
		LastSeq:  s.lastSeq,
		LastFail: s.lastFail,
	}
}

func (s *Store) emit(n Notice) {
	s.outbox = append(s.outbox, n)
}
