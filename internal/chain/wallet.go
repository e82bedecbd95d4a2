package chain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	solana "github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
)

// DefaultKeyEnv is read by the `env` signer source.
const DefaultKeyEnv = "SOLANA_PRIVATE_KEY_BASE58"

// AskKeyword makes ResolveSigner prompt for a base58 private key.
const AskKeyword = "ASK"

// LoadPrivateKeyFromEnv reads a base58 private key from DefaultKeyEnv.
func LoadPrivateKeyFromEnv() (solana.PrivateKey, error) {
	return LoadPrivateKeyFromEnvVar(DefaultKeyEnv)
}

// LoadPrivateKeyFromEnvVar reads a base58 private key from name, loading .env first.
func LoadPrivateKeyFromEnvVar(name string) (solana.PrivateKey, error) {
	_ = godotenv.Load() // best-effort
	b58 := os.Getenv(name)
	if b58 == "" {
		return nil, fmt.Errorf("%s not set", name)
	}
	return solana.PrivateKeyFromBase58(b58)
}

// Prompt is where ResolveSigner reads ASK answers from.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// NewPrompt buffers in once so consecutive ASK answers can be read from one stream.
func NewPrompt(in io.Reader, out io.Writer) Prompt {
	if in == nil {
		return Prompt{Out: out}
	}
	if _, ok := in.(*bufio.Reader); ok {
		return Prompt{In: in, Out: out}
	}
	return Prompt{In: bufio.NewReader(in), Out: out}
}

// ResolveSigner turns a signer source into a private key. Sources are a keypair JSON file
// path, ASK, env, or env:NAME.
func ResolveSigner(source string, prompt Prompt) (solana.PrivateKey, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil, errors.New("no signer given")
	case source == AskKeyword:
		return askPrivateKey(prompt)
	case source == "env":
		return LoadPrivateKeyFromEnv()
	case strings.HasPrefix(source, "env:"):
		return LoadPrivateKeyFromEnvVar(strings.TrimPrefix(source, "env:"))
	}
	path, err := expandHome(source)
	if err != nil {
		return nil, err
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keypair %s: %w", path, err)
	}
	return key, nil
}

func askPrivateKey(prompt Prompt) (solana.PrivateKey, error) {
	if prompt.In == nil {
		return nil, errors.New("ASK signer needs an interactive input")
	}
	if prompt.Out != nil {
		fmt.Fprint(prompt.Out, "Enter base58 private key: ")
	}
	reader, ok := prompt.In.(*bufio.Reader)
	if !ok {
		// unbuffered single-byte reads leave the rest of the stream for the next prompt
		reader = bufio.NewReaderSize(oneByteReader{prompt.In}, 16)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errors.New("empty private key")
	}
	return solana.PrivateKeyFromBase58(line)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}
