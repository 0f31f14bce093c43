// Package mocks provides gomock test doubles for the collaborator
// interfaces in pkg/session.
package mocks

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	"github.com/seclib/tlsresume/pkg/session"
)

// Session mocks the session.Session interface.
type Session struct {
	ctrl     *gomock.Controller
	recorder *SessionRecorder
}

// SessionRecorder records expected calls on a Session.
type SessionRecorder struct {
	mock *Session
}

// NewSession creates a new mock instance.
func NewSession(ctrl *gomock.Controller) *Session {
	mock := &Session{ctrl: ctrl}
	mock.recorder = &SessionRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Session) EXPECT() *SessionRecorder {
	return m.recorder
}

// PeerHost mocks the base method.
func (m *Session) PeerHost() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PeerHost")
	ret0, _ := ret[0].(string)
	return ret0
}

// PeerHost indicates an expected call of PeerHost.
func (mr *SessionRecorder) PeerHost() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PeerHost", reflect.TypeOf((*Session)(nil).PeerHost))
}

// PeerPort mocks the base method.
func (m *Session) PeerPort() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PeerPort")
	ret0, _ := ret[0].(int)
	return ret0
}

// PeerPort indicates an expected call of PeerPort.
func (mr *SessionRecorder) PeerPort() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PeerPort", reflect.TypeOf((*Session)(nil).PeerPort))
}

// IsValid mocks the base method.
func (m *Session) IsValid() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsValid")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsValid indicates an expected call of IsValid.
func (mr *SessionRecorder) IsValid() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsValid", reflect.TypeOf((*Session)(nil).IsValid))
}

// Protocol mocks the base method.
func (m *Session) Protocol() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Protocol")
	ret0, _ := ret[0].(string)
	return ret0
}

// Protocol indicates an expected call of Protocol.
func (mr *SessionRecorder) Protocol() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Protocol", reflect.TypeOf((*Session)(nil).Protocol))
}

// CipherSuite mocks the base method.
func (m *Session) CipherSuite() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CipherSuite")
	ret0, _ := ret[0].(string)
	return ret0
}

// CipherSuite indicates an expected call of CipherSuite.
func (mr *SessionRecorder) CipherSuite() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CipherSuite", reflect.TypeOf((*Session)(nil).CipherSuite))
}

// ID mocks the base method.
func (m *Session) ID() session.ID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ID")
	ret0, _ := ret[0].(session.ID)
	return ret0
}

// ID indicates an expected call of ID.
func (mr *SessionRecorder) ID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ID", reflect.TypeOf((*Session)(nil).ID))
}
