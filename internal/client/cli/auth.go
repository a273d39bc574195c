package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
)

// getSimpleText and getPassword point at the interactive input helpers and
// are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and signs up. The password is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Nickname (optional)", a.out)
	if err != nil {
		return err
	}

	id, err := a.client.Signup(ctx, &pb.SignupRequest{
		Email:    email,
		Password: string(password),
		Name:     name,
		Nickname: nickname,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %d created, you can log in now\n", id)
	return nil
}

// Login prompts for credentials and keeps the issued tokens in the client.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, email, password); err != nil {
		return err
	}

	a.userName = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	a.userName = ""
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
