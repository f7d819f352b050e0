package crack_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hasbyte1/shadowcrack/crack"
	"github.com/hasbyte1/shadowcrack/hashing"
	"github.com/hasbyte1/shadowcrack/shadow"
)

func ExampleCandidates() {
	for c := range crack.Candidates(crack.MustAlphabet("xyz"), 2) {
		fmt.Print(c, " ")
	}
	fmt.Println()
	// Output: xx xy xz yx yy yz zx zy zz
}

func ExampleCoordinator_Run() {
	// A toy primitive whose digest is the hex encoding of the candidate.
	toy := hashing.CrypterFunc(func(candidate, spec string) (string, error) {
		return fmt.Sprintf("%s%x", spec, candidate), nil
	})

	d, err := shadow.Parse("alice:$toy$salt$636162:19000:0:99999:7:::", "alice")
	if err != nil {
		log.Fatal(err)
	}

	c, err := crack.NewCoordinator(toy, crack.Config{
		Alphabet:  crack.MustAlphabet("abc"),
		MinLength: 1,
		MaxLength: 4,
	})
	if err != nil {
		log.Fatal(err)
	}
	out, err := c.Run(context.Background(), d)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Status, out.Candidate, out.Length)
	for _, l := range out.Lengths {
		fmt.Printf("length %d: %d tried\n", l.Length, l.Tried)
	}
	// Output:
	// found cab 3
	// length 1: 3 tried
	// length 2: 9 tried
	// length 3: 20 tried
}
