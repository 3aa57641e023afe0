package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meetin/meetin/internal/models"
)

// AddVisitor adds a visitor named by args, or asks for the name.
func (a *App) AddVisitor(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = getSimpleText(a.reader, "Visitor name", a.out); err != nil {
			return err
		}
	}

	v, err := a.roster.Add(name)
	if err != nil {
		a.println(message(err))
		return err
	}
	a.println(fmt.Sprintf("Added %s.", v.Name))
	return nil
}

// AddVisitorDetails walks through the visitor details form.
func (a *App) AddVisitorDetails(ctx context.Context) error {
	var d models.VisitorDetails
	var gender, purpose, reference string

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Visitor name", &d.Name},
		{"Phone number (optional)", &d.Phone},
		{"Email (optional)", &d.Email},
		{"Address", &d.Address},
		{"Gender (" + optionList(models.Genders) + ")", &gender},
		{"Purpose (" + optionList(models.Purposes) + ")", &purpose},
		{"Description", &d.Description},
		{"Whom to meet", &d.WhomToMeet},
		{"ID proof", &d.IDProof},
		{"Reference (" + optionList(models.References) + ")", &reference},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	d.Gender = pickOption(gender, models.Genders)
	d.Purpose = pickOption(purpose, models.Purposes)
	d.Reference = pickOption(reference, models.References)

	v, err := a.roster.AddDetailed(d)
	if err != nil {
		a.println(message(err))
		return err
	}
	a.println(fmt.Sprintf("Added %s.", v.Name))
	return nil
}

// ListVisitors prints the roster, newest first.
func (a *App) ListVisitors(ctx context.Context) error {
	visitors := a.roster.List()
	if len(visitors) == 0 {
		a.println("No visitors yet.")
		return nil
	}
	for i, v := range visitors {
		line := fmt.Sprintf("%d. %s  %s", i+1, v.Name, v.CreatedAt.Format("2006-01-02 15:04"))
		if d := v.Details; d != nil {
			var extra []string
			if d.Purpose != "" {
				extra = append(extra, string(d.Purpose))
			}
			if d.WhomToMeet != "" {
				extra = append(extra, "to meet "+d.WhomToMeet)
			}
			if len(extra) > 0 {
				line += "  (" + strings.Join(extra, ", ") + ")"
			}
		}
		a.println(line)
	}
	return nil
}

// SetDate shows the dashboard date or, given YYYY-MM-DD, changes it.
func (a *App) SetDate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(a.date.Format(dateLayout))
		return nil
	}
	d, err := time.ParseInLocation(dateLayout, args[0], time.Local)
	if err != nil {
		a.println("Invalid date, use YYYY-MM-DD.")
		return err
	}
	a.date = d
	a.println(d.Format(dateLayout))
	return nil
}
