// Package pkcs12 carrega certificados de cliente no formato PKCS#12
// (.pfx/.p12) para uso em conexões TLS mútuas.
package pkcs12

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrNoCertificate indica um arquivo PKCS#12 sem certificado de cliente
var ErrNoCertificate = errors.New("arquivo PKCS#12 sem certificado")

// ToTLSCertificate converte um certificado PKCS#12 em um tls.Certificate,
// incluindo a cadeia de certificados intermediários.
func ToTLSCertificate(pfxData []byte, password string) (tls.Certificate, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao decodificar certificado: %w", err)
	}
	if certificate == nil {
		return tls.Certificate{}, ErrNoCertificate
	}

	out := tls.Certificate{
		PrivateKey: privateKey,
		Leaf:       certificate,
	}
	out.Certificate = append(out.Certificate, certificate.Raw)
	for _, cert := range caCerts {
		out.Certificate = append(out.Certificate, cert.Raw)
	}
	return out, nil
}

// LoadFile lê e converte um arquivo PKCS#12.
func LoadFile(path, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao ler certificado %s: %w", path, err)
	}
	return ToTLSCertificate(data, password)
}
