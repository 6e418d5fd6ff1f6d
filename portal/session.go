package portal

import "incorpx-backend/store"

const sessionKey = "client_id"

// Session retains the logged-in client across portal page reloads. It is
// scoped to one session's key-value store; the admin token is never kept
// here, it lives only for the lifetime of the RemoteBackend value.
type Session struct {
	kv store.KV
}

func NewSession(kv store.KV) *Session {
	return &Session{kv: kv}
}

func (s *Session) CurrentClientID() (string, bool) {
	return s.kv.Get(sessionKey)
}

func (s *Session) SetClient(id string) {
	s.kv.Set(sessionKey, id)
}

func (s *Session) Clear() {
	s.kv.Delete(sessionKey)
}
