// Command hash-generator prints bcrypt hashes for the passwords given on
// the command line. Useful for seeding development databases.
package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password [password ...]")
		os.Exit(2)
	}

	cost := bcrypt.DefaultCost
	if args[0] == "-cost" && len(args) >= 3 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed < bcrypt.MinCost || parsed > bcrypt.MaxCost {
			fmt.Fprintf(os.Stderr, "invalid cost %q (must be %d-%d)\n",
				args[1], bcrypt.MinCost, bcrypt.MaxCost)
			os.Exit(2)
		}
		cost = parsed
		args = args[2:]
	}

	for _, password := range args {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing %q: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, string(hash))
	}
}
