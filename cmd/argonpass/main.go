package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/credlock/argonpass"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}

	switch os.Args[1] {
	case "hash":
		os.Exit(runHash(os.Args[2:]))
	case "verify":
		os.Exit(runVerify(os.Args[2:]))
	default:
		usage()
		os.Exit(exitUsage)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  argonpass hash [-m KiB] [-t passes] [-p lanes] [-stdin] [credential]")
	fmt.Fprintln(os.Stderr, "  argonpass verify [-stdin] <encoded-hash> [credential]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "hash prints the PHC-encoded hash string for the credential.")
	fmt.Fprintln(os.Stderr, "verify exits 0 on match, 1 on mismatch, 2 on malformed input.")
}

func runHash(args []string) int {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	var (
		memory      = fs.Uint("m", uint(argonpass.RFC9106SecondRecommended.Memory), "memory cost in KiB")
		timeCost    = fs.Uint("t", uint(argonpass.RFC9106SecondRecommended.Time), "time cost (passes)")
		parallelism = fs.Uint("p", uint(argonpass.RFC9106SecondRecommended.Parallelism), "parallelism (lanes)")
		fromStdin   = fs.Bool("stdin", false, "read the credential from standard input")
	)
	_ = fs.Parse(args)

	credential, ok := readCredential(fs.Args(), 0, *fromStdin)
	if !ok {
		usage()
		return exitUsage
	}

	if *memory > (1<<32)-1 || *timeCost > (1<<32)-1 || *parallelism > 255 {
		fmt.Fprintln(os.Stderr, "argonpass: cost parameter out of range")
		return exitUsage
	}

	hasher, err := argonpass.New().
		WithParams(argonpass.Params{
			Memory:      uint32(*memory),
			Time:        uint32(*timeCost),
			Parallelism: uint8(*parallelism),
			SaltLength:  argonpass.RFC9106SecondRecommended.SaltLength,
			KeyLength:   argonpass.RFC9106SecondRecommended.KeyLength,
		}).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "argonpass: %v\n", err)
		return exitUsage
	}
	defer hasher.Close()

	encoded, err := hasher.Hash(credential)
	if err != nil {
		// Never echoes the credential.
		fmt.Fprintf(os.Stderr, "argonpass: failed to hash credential: %v\n", err)
		return exitMismatch
	}

	fmt.Println(encoded)
	return exitOK
}

func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fromStdin := fs.Bool("stdin", false, "read the credential from standard input")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		usage()
		return exitUsage
	}
	encoded := fs.Arg(0)

	credential, ok := readCredential(fs.Args(), 1, *fromStdin)
	if !ok {
		usage()
		return exitUsage
	}

	match, err := argonpass.Verify(encoded, credential)
	if err != nil {
		if errors.Is(err, argonpass.ErrMalformedHash) {
			fmt.Fprintf(os.Stderr, "argonpass: %v\n", err)
			return exitUsage
		}
		fmt.Fprintf(os.Stderr, "argonpass: verification failed: %v\n", err)
		return exitUsage
	}

	if !match {
		fmt.Println("no match")
		return exitMismatch
	}

	fmt.Println("match")
	return exitOK
}

// readCredential takes the credential from the positional argument at index
// pos, or from stdin when -stdin is set. A trailing newline from stdin is
// stripped so piped input behaves like an argument.
func readCredential(args []string, pos int, fromStdin bool) ([]byte, bool) {
	if fromStdin {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return nil, false
		}
		return []byte(strings.TrimRight(string(data), "\r\n")), true
	}

	if len(args) <= pos {
		return nil, false
	}

	return []byte(args[pos]), true
}
