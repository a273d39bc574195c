package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
)

var getConfirmation = GetConfirmation

func (a *App) Me(ctx context.Context) error {
	u, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

func (a *App) printUser(u *pb.UserResponse) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", u.Id)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "Nickname:\t%s\n", u.Nickname)
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	_ = tw.Flush()
}

// Update asks for the current password and the fields to change. Empty
// answers keep the stored value.
func (a *App) Update(ctx context.Context) error {
	password, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := &pb.UpdateProfileRequest{Password: string(password)}
	if req.Email, err = getSimpleText(a.reader, "New email (empty to keep)", a.out); err != nil {
		return err
	}
	if req.Name, err = getSimpleText(a.reader, "New name (empty to keep)", a.out); err != nil {
		return err
	}
	if req.Nickname, err = getSimpleText(a.reader, "New nickname (empty to keep)", a.out); err != nil {
		return err
	}

	newPassword, err := getPassword("New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)
	req.NewPassword = string(newPassword)

	u, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	if req.Email != "" {
		a.userName = u.Email
	}
	a.printUser(u)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Delete your account permanently?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.client.DeleteAccount(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

func (a *App) Addresses(ctx context.Context) error {
	list, err := a.client.Addresses(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No saved addresses")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRECIPIENT\tPHONE\tADDRESS\tDEFAULT")
	for _, ad := range list {
		def := ""
		if ad.IsDefault {
			def = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s %s\t%s\n", ad.Name, ad.Recipient, ad.Phone, ad.Zipcode, ad.Address1, ad.Address2, def)
	}
	return tw.Flush()
}

func (a *App) Categories(ctx context.Context) error {
	list, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No categories")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\n", c.Id, c.Name)
	}
	return tw.Flush()
}
