package sim

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
)

const (
	SessionStateRunning int32 = iota + 1
	SessionStateFinished
	SessionStateFailed
)

var sessions = hashmap.New()

// Session is one match running on its own goroutine.
type Session struct {
	ID        string        `json:"id"`
	Config    config.Config `json:"config"`
	CreatedAt time.Time     `json:"created_at"`
	Result    *Result       `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`

	state int32
	done  chan struct{}
}

func (s *Session) State() int32 {
	return atomic.LoadInt32(&s.state)
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the match is over or ctx is done.
func (s *Session) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-s.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if s.State() == SessionStateFailed {
		return nil, fmt.Errorf("session %s: %s", s.ID, s.Error)
	}
	return s.Result, nil
}

// Report is the session encoded as JSON. It must only be called once the
// session is done.
func (s *Session) Report() []byte {
	return json.Marshal(s)
}

// Submit starts a match in the background and registers its session.
func Submit(cfg config.Config, listeners ...event.Listener) (*Session, error) {
	match, err := NewMatch(cfg, listeners...)
	if err != nil {
		return nil, err
	}
	session := &Session{
		ID:        uuid.New().String(),
		Config:    cfg,
		CreatedAt: time.Now(),
		state:     SessionStateRunning,
		done:      make(chan struct{}),
	}
	sessions.Set(session.ID, session)
	log.Infof("session %s started, %d players, seed %d\n", session.ID, cfg.Players, match.seed)

	async.Async(func() {
		run(session, match)
	})
	return session, nil
}

func run(session *Session, match *Match) {
	defer close(session.done)
	defer func() {
		if err := recover(); err != nil {
			session.Error = fmt.Sprint(err)
			atomic.StoreInt32(&session.state, SessionStateFailed)
			log.Errorf("session %s panicked: %v\n", session.ID, err)
		}
	}()

	result, err := match.Play()
	if err != nil {
		session.Error = err.Error()
		atomic.StoreInt32(&session.state, SessionStateFailed)
		log.Errorf("session %s failed: %v\n", session.ID, err)
		return
	}
	session.Result = result
	atomic.StoreInt32(&session.state, SessionStateFinished)
	log.Infof("session %s finished after %d round(s), winner: %s\n", session.ID, len(result.Rounds), result.Winner)
}

func GetSession(id string) (*Session, error) {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsSessionInvalid
}

func GetSessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// DeleteSession forgets a finished session.
func DeleteSession(id string) error {
	session, err := GetSession(id)
	if err != nil {
		return err
	}
	if session.State() == SessionStateRunning {
		return fmt.Errorf("session %s is still running", id)
	}
	sessions.Del(id)
	return nil
}

// RunAll plays cfg.Matches matches, at most cfg.Concurrent at a time. With a
// fixed seed, match i is seeded with seed+i. Listeners are shared by every
// match and must be safe for concurrent use when cfg.Concurrent > 1.
func RunAll(ctx context.Context, cfg config.Config, listeners ...event.Listener) ([]*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slots := make(chan struct{}, cfg.Concurrent)
	list := make([]*Session, cfg.Matches)
	errs := make([]error, cfg.Matches)
	wg := sync.WaitGroup{}

	for i := 0; i < cfg.Matches; i++ {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}
		matchCfg := cfg
		if cfg.Seed != 0 {
			matchCfg.Seed = cfg.Seed + int64(i)
		}
		session, err := Submit(matchCfg, listeners...)
		if err != nil {
			<-slots
			wg.Wait()
			return nil, err
		}
		list[i] = session
		wg.Add(1)
		index := i
		async.Async(func() {
			defer wg.Done()
			defer func() { <-slots }()
			_, errs[index] = session.Wait(ctx)
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return list, err
		}
	}
	return list, nil
}
