package argonpass_test

import (
	"fmt"

	"github.com/credlock/argonpass"
)

func Example() {
	hasher, err := argonpass.New().
		WithParams(argonpass.Params{
			Memory:      1024,
			Time:        1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		}).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer hasher.Close()

	encoded, err := hasher.Hash([]byte("correct horse battery staple"))
	if err != nil {
		fmt.Println(err)
		return
	}

	// The encoded string is self-describing; Verify needs nothing else.
	ok, err := hasher.Verify(encoded, []byte("correct horse battery staple"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("verified:", ok)

	ok, err = hasher.Verify(encoded, []byte("wrong password"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("verified:", ok)

	// Output:
	// verified: true
	// verified: false
}

func ExampleDecodeString() {
	encoded := "$argon2id$v=19$m=65536,t=3,p=4$" +
		"AQEBAQEBAQEBAQEBAQEBAQ$" +
		"AgICAgICAgICAgICAgICAgICAgICAgICAgICAgICAgI"

	rec, err := argonpass.DecodeString(encoded)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("memory:", rec.Memory)
	fmt.Println("time:", rec.Time)
	fmt.Println("parallelism:", rec.Parallelism)

	// Output:
	// memory: 65536
	// time: 3
	// parallelism: 4
}
