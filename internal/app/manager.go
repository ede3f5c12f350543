package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionManager handles creation and lifecycle of user sessions
type SessionManager interface {
	CreateSession() (*Session, error)
	GetSession(sessionID string) (*Session, error)
	CloseSession(sessionID string) error
	CleanupExpiredSessions() int
	Count() int
}

// InMemorySessionManager implements SessionManager with in-memory storage
type InMemorySessionManager struct {
	sessions   map[string]*Session
	sessionAge map[string]time.Time
	mutex      sync.RWMutex
	service    *Service
	maxAge     time.Duration
}

// NewInMemorySessionManager creates a new session manager
func NewInMemorySessionManager(service *Service, maxAge time.Duration) *InMemorySessionManager {
	return &InMemorySessionManager{
		sessions:   make(map[string]*Session),
		sessionAge: make(map[string]time.Time),
		service:    service,
		maxAge:     maxAge,
	}
}

// CreateSession creates a new session with a random ID
func (sm *InMemorySessionManager) CreateSession() (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, NewSessionError("", "create", err)
	}
	session := sm.service.NewSession(id.String())

	sm.mutex.Lock()
	sm.sessions[session.ID] = session
	sm.sessionAge[session.ID] = time.Now()
	sm.mutex.Unlock()

	return session, nil
}

// GetSession retrieves an existing session and refreshes its last access time
func (sm *InMemorySessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, NewSessionError(sessionID, "get", ErrSessionNotFound)
	}
	sm.sessionAge[sessionID] = time.Now()
	return session, nil
}

// CloseSession removes a session
func (sm *InMemorySessionManager) CloseSession(sessionID string) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if _, exists := sm.sessions[sessionID]; !exists {
		return NewSessionError(sessionID, "close", ErrSessionNotFound)
	}
	delete(sm.sessions, sessionID)
	delete(sm.sessionAge, sessionID)
	return nil
}

// CleanupExpiredSessions removes sessions idle for longer than maxAge
func (sm *InMemorySessionManager) CleanupExpiredSessions() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := time.Now()
	var expired []string
	for sessionID, lastAccess := range sm.sessionAge {
		if now.Sub(lastAccess) > sm.maxAge {
			expired = append(expired, sessionID)
		}
	}

	for _, sessionID := range expired {
		delete(sm.sessions, sessionID)
		delete(sm.sessionAge, sessionID)
	}
	return len(expired)
}

// Count returns the number of live sessions
func (sm *InMemorySessionManager) Count() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.sessions)
}
