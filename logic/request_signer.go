package logic

import (
	"crypto/rsa"
	"github.com/go-fed/httpsig"
	"net/http"
	"time"
)

// SignProfile picks which content type a signed request declares. Some
// remote software families only accept one of the two.
type SignProfile int

const (
	ProfileActivityJson SignProfile = iota
	ProfileLdJson
)

const (
	ContentTypeActivityJson = "application/activity+json"
	ContentTypeLdJson       = `application/ld+json; profile="https://www.w3.org/ns/activitystreams"`
)

func (p SignProfile) ContentType() string {
	if p == ProfileLdJson {
		return ContentTypeLdJson
	}
	return ContentTypeActivityJson
}

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_request_signer.go -package mocks fedi_relay/logic IRequestSigner

// IRequestSigner adds draft HTTP signature headers to an outgoing request,
// with a digest over the body when one is present.
type IRequestSigner interface {
	Sign(privKey *rsa.PrivateKey, keyId string, req *http.Request, body []byte, profile SignProfile) error
}

type requestSigner struct {
}

func NewRequestSigner() IRequestSigner {
	return &requestSigner{}
}

func (rs *requestSigner) Sign(
	privKey *rsa.PrivateKey,
	keyId string,
	req *http.Request,
	body []byte,
	profile SignProfile,
) error {

	if privKey == nil {
		return ErrSigningKeyMissing
	}

	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("Content-Type", profile.ContentType())

	prefs := []httpsig.Algorithm{httpsig.RSA_SHA256}
	digestAlgorithm := httpsig.DigestSha256
	headersToSign := []string{httpsig.RequestTarget, "host", "date", "digest"}
	signer, _, err := httpsig.NewSigner(prefs, digestAlgorithm, headersToSign, httpsig.Signature, 0)
	if err != nil {
		return err
	}
	return signer.SignRequest(privKey, keyId, req, body)
}
