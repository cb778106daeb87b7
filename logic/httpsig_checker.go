package logic

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"github.com/go-fed/httpsig"
	"net/http"
	"fedi_relay/dto"
	"fedi_relay/shared"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_sig_checker.go -package mocks fedi_relay/logic IHttpSigChecker

// IHttpSigChecker verifies the signature on an incoming request and hands
// back the signing actor.
type IHttpSigChecker interface {
	Check(w http.ResponseWriter, r *http.Request) (*dto.UserInfo, bool)
}

type httpSigChecker struct {
	logger   shared.ILogger
	resolver IActorResolver
}

func NewHttpSigChecker(logger shared.ILogger, resolver IActorResolver) IHttpSigChecker {
	return &httpSigChecker{logger, resolver}
}

func (chk *httpSigChecker) Check(w http.ResponseWriter, r *http.Request) (*dto.UserInfo, bool) {

	var err error
	var verifier httpsig.Verifier
	if verifier, err = httpsig.NewVerifier(r); err != nil {
		http.Error(w, "Invalid signature header", http.StatusUnauthorized)
		return nil, false
	}

	keyId := verifier.KeyId()
	actorUrl := strings.Split(keyId, "#")[0]
	userInfo, err := chk.resolver.ResolveUrl(actorUrl)
	if err != nil {
		chk.logger.Infof("Cannot resolve signing actor %s: %v", actorUrl, err)
		http.Error(w, "Cannot resolve signing actor", http.StatusUnauthorized)
		return nil, false
	}

	pubKey, err := parsePubKeyPem(userInfo.PublicKey.PublicKeyPem)
	if err != nil {
		chk.logger.Infof("Bad public key for %s: %v", actorUrl, err)
		http.Error(w, "Cannot parse actor's public key", http.StatusUnauthorized)
		return nil, false
	}

	if err = verifier.Verify(pubKey, httpsig.RSA_SHA256); err != nil {
		http.Error(w, "Signature verification failed", http.StatusUnauthorized)
		return nil, false
	}
	return userInfo, true
}

func parsePubKeyPem(pubKeyPem string) (any, error) {
	block, _ := pem.Decode([]byte(pubKeyPem))
	if block == nil {
		return nil, errors.New("no PEM block in public key")
	}
	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("public key is neither PKIX nor PKCS#1")
}
