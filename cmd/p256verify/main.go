// Command p256verify checks a P-256 ECDSA signature from the command line.
// It accepts either the raw 160-byte verification blob or the digest (or a
// file to hash), the 64-byte signature and the 64-byte public key as
// separate hex values, and exits 0 when the signature is valid.
package main

import (
	"encoding/hex"
	"flag"
	"os"

	"github.com/rs/zerolog"

	p256r1 "p256r1.mleku.dev"
	"p256r1.mleku.dev/precompile"
)

func main() {
	var (
		blobHex = flag.String("input", "", "160-byte hex blob h || r || s || qx || qy")
		hashHex = flag.String("hash", "", "32-byte hex message digest")
		msgFile = flag.String("msg", "", "file to hash with SHA-256 instead of -hash")
		sigHex  = flag.String("sig", "", "64-byte hex compact signature r || s")
		pubHex  = flag.String("pub", "", "64-byte hex uncompressed public key x || y")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var valid bool
	if *blobHex != "" {
		blob, err := hex.DecodeString(*blobHex)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -input blob")
		}
		out := precompile.Run(blob)
		valid = out[precompile.OutputLen-1] == 1
	} else {
		sigBytes, err := hex.DecodeString(*sigHex)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -sig")
		}
		sig, err := p256r1.ParseSignature(sigBytes)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -sig")
		}
		pubBytes, err := hex.DecodeString(*pubHex)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -pub")
		}
		pub, err := p256r1.ParsePublicKey(pubBytes)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -pub")
		}

		if *msgFile != "" {
			msg, err := os.ReadFile(*msgFile)
			if err != nil {
				log.Fatal().Err(err).Msg("cannot read -msg file")
			}
			valid = p256r1.VerifyMessage(sig, msg, pub)
		} else {
			digest, err := hex.DecodeString(*hashHex)
			if err != nil {
				log.Fatal().Err(err).Msg("bad -hash")
			}
			valid = p256r1.ECDSAVerify(sig, digest, pub)
		}
	}

	if valid {
		log.Info().Msg("signature valid")
		return
	}
	log.Error().Msg("signature invalid")
	os.Exit(1)
}
