package cli

import (
	"context"
	"fmt"
	"os"
)

// login prompts until the dialogue accepts the credentials. When the
// password comes from the environment a rejection is final.
func login(ctx context.Context, con *console, d dialogue, user string) error {
	_, fromEnv := os.LookupEnv(passwordEnv)
	for {
		id := user
		if id == "" {
			var err error
			if id, err = con.readLine("Employee ID: "); err != nil {
				return err
			}
		}

		pw, err := readPassword(con)
		if err != nil {
			return err
		}

		err = d.Login(ctx, id, pw)
		if err == nil {
			fmt.Fprintln(con.out, "Login successful")
			return nil
		}
		if !isInvalidCredentials(err) {
			return err
		}
		fmt.Fprintln(con.out, "Invalid credentials")
		if fromEnv {
			return err
		}
	}
}

// readPassword returns $SVCPROFILE_PASSWORD if set, otherwise prompts.
func readPassword(con *console) (string, error) {
	if pw, ok := os.LookupEnv(passwordEnv); ok {
		return pw, nil
	}
	return con.password("Password: ")
}
