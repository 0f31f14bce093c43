package cache_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/seclib/tlsresume/mocks"
	"github.com/seclib/tlsresume/pkg/cache"
	"github.com/seclib/tlsresume/pkg/session"
)

var _ = Describe("ClientCache", func() {
	var (
		ctrl *gomock.Controller
		c    *cache.ClientCache
	)

	newMockSession := func(host string, port int, valid bool) *mocks.Session {
		s := mocks.NewSession(ctrl)
		s.EXPECT().PeerHost().Return(host).AnyTimes()
		s.EXPECT().PeerPort().Return(port).AnyTimes()
		s.EXPECT().IsValid().Return(valid).AnyTimes()
		s.EXPECT().Protocol().Return("TLSv1.3").AnyTimes()
		s.EXPECT().CipherSuite().Return("TLS_AES_128_GCM_SHA256").AnyTimes()
		s.EXPECT().ID().Return(session.NewID([]byte{0x01, 0x02})).AnyTimes()
		return s
	}

	newMockHandshake := func(host string, port int, protocols, ciphers []string) *mocks.Handshake {
		hs := mocks.NewHandshake(ctrl)
		hs.EXPECT().PeerHost().Return(host).AnyTimes()
		hs.EXPECT().PeerPort().Return(port).AnyTimes()
		hs.EXPECT().EnabledProtocols().Return(protocols).AnyTimes()
		hs.EXPECT().EnabledCipherSuites().Return(ciphers).AnyTimes()
		return hs
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		c = cache.NewClientCache()
	})

	Describe("Resume", func() {
		It("attaches a compatible cached session", func() {
			s := newMockSession("example.com", 443, true)
			Expect(c.OnSessionCreated(s)).To(BeTrue())

			hs := newMockHandshake("example.com", 443,
				[]string{"TLSv1.2", "TLSv1.3"},
				[]string{"TLS_AES_128_GCM_SHA256"})
			hs.EXPECT().SetResumptionSession(s).Return(nil)
			Expect(c.Resume(hs)).To(Succeed())
		})

		It("does not attach when no session is cached", func() {
			hs := newMockHandshake("example.com", 443,
				[]string{"TLSv1.3"}, []string{"TLS_AES_128_GCM_SHA256"})
			Expect(c.Resume(hs)).To(Succeed())
		})

		It("does not attach a session whose protocol is disabled", func() {
			s := newMockSession("example.com", 443, true)
			Expect(c.OnSessionCreated(s)).To(BeTrue())

			hs := newMockHandshake("example.com", 443,
				[]string{"TLSv1.2"}, []string{"TLS_AES_128_GCM_SHA256"})
			Expect(c.Resume(hs)).To(Succeed())
			Expect(c.Len()).To(Equal(1))
		})

		It("evicts an invalidated session on lookup", func() {
			s := newMockSession("example.com", 443, false)
			// Admission only inspects the endpoint, so an already-invalid
			// session can still make it into the cache.
			Expect(c.OnSessionCreated(s)).To(BeTrue())

			hs := newMockHandshake("example.com", 443,
				[]string{"TLSv1.3"}, []string{"TLS_AES_128_GCM_SHA256"})
			Expect(c.Resume(hs)).To(Succeed())
			Expect(c.Len()).To(BeZero())
		})

		It("wraps attach failures in an AttachError", func() {
			s := newMockSession("example.com", 443, true)
			Expect(c.OnSessionCreated(s)).To(BeTrue())

			engineErr := errors.New("engine rejected session")
			hs := newMockHandshake("example.com", 443,
				[]string{"TLSv1.3"}, []string{"TLS_AES_128_GCM_SHA256"})
			hs.EXPECT().SetResumptionSession(s).Return(engineErr)

			err := c.Resume(hs)
			var attachErr *cache.AttachError
			Expect(errors.As(err, &attachErr)).To(BeTrue())
			Expect(errors.Is(err, engineErr)).To(BeTrue())
		})
	})

	Describe("OnSessionCreated", func() {
		It("rejects a second session for the same endpoint", func() {
			Expect(c.OnSessionCreated(newMockSession("example.com", 443, true))).To(BeTrue())
			Expect(c.OnSessionCreated(newMockSession("Example.COM", 443, true))).To(BeFalse())
		})

		It("rejects sessions without a resolved endpoint", func() {
			Expect(c.OnSessionCreated(newMockSession("", 443, true))).To(BeFalse())
			Expect(c.OnSessionCreated(newMockSession("example.com", session.PortUnknown, true))).To(BeFalse())
			Expect(c.Len()).To(BeZero())
		})
	})
})
