package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	Addresses(ctx context.Context) error
	Categories(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - categories     list product categories
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - me             show the current profile
//	  - update         change email, name, nickname or password
//	  - addresses      list saved shipping addresses
//	  - delete         delete the account
//	  - logout         end the session
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shoux%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, update, addresses, categories, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, categories, exit")
			}
		case "register", "signup":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "me":
			err = a.Me(ctx)
		case "update":
			err = a.Update(ctx)
		case "delete":
			err = a.Delete(ctx)
		case "addresses":
			err = a.Addresses(ctx)
		case "categories", "cats":
			err = a.Categories(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
