package mocks

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	"github.com/seclib/tlsresume/pkg/session"
)

// Handshake mocks the session.Handshake interface.
type Handshake struct {
	ctrl     *gomock.Controller
	recorder *HandshakeRecorder
}

// HandshakeRecorder records expected calls on a Handshake.
type HandshakeRecorder struct {
	mock *Handshake
}

// NewHandshake creates a new mock instance.
func NewHandshake(ctrl *gomock.Controller) *Handshake {
	mock := &Handshake{ctrl: ctrl}
	mock.recorder = &HandshakeRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Handshake) EXPECT() *HandshakeRecorder {
	return m.recorder
}

// PeerHost mocks the base method.
func (m *Handshake) PeerHost() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PeerHost")
	ret0, _ := ret[0].(string)
	return ret0
}

// PeerHost indicates an expected call of PeerHost.
func (mr *HandshakeRecorder) PeerHost() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PeerHost", reflect.TypeOf((*Handshake)(nil).PeerHost))
}

// PeerPort mocks the base method.
func (m *Handshake) PeerPort() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PeerPort")
	ret0, _ := ret[0].(int)
	return ret0
}

// PeerPort indicates an expected call of PeerPort.
func (mr *HandshakeRecorder) PeerPort() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PeerPort", reflect.TypeOf((*Handshake)(nil).PeerPort))
}

// EnabledProtocols mocks the base method.
func (m *Handshake) EnabledProtocols() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnabledProtocols")
	ret0, _ := ret[0].([]string)
	return ret0
}

// EnabledProtocols indicates an expected call of EnabledProtocols.
func (mr *HandshakeRecorder) EnabledProtocols() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnabledProtocols", reflect.TypeOf((*Handshake)(nil).EnabledProtocols))
}

// EnabledCipherSuites mocks the base method.
func (m *Handshake) EnabledCipherSuites() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnabledCipherSuites")
	ret0, _ := ret[0].([]string)
	return ret0
}

// EnabledCipherSuites indicates an expected call of EnabledCipherSuites.
func (mr *HandshakeRecorder) EnabledCipherSuites() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnabledCipherSuites", reflect.TypeOf((*Handshake)(nil).EnabledCipherSuites))
}

// SetResumptionSession mocks the base method.
func (m *Handshake) SetResumptionSession(arg0 session.Session) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetResumptionSession", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetResumptionSession indicates an expected call of SetResumptionSession.
func (mr *HandshakeRecorder) SetResumptionSession(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetResumptionSession", reflect.TypeOf((*Handshake)(nil).SetResumptionSession), arg0)
}
