// Package table renders resource lists for terminal output.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

func Users(users []domain.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Username,
			u.DisplayName(),
			yesNo(u.IsAdmin),
			yesNo(u.TwoFAEnabled),
		})
	}
	return render("Users", []string{"ID", "USERNAME", "NAME", "ADMIN", "2FA"}, rows)
}

func Accounts(accounts []domain.Account) string {
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Iaas.Name,
			string(a.Iaas.Type),
			a.Currency,
		})
	}
	return render("Accounts", []string{"ID", "NAME", "PROVIDER", "TYPE", "CURRENCY"}, rows)
}

func Providers(providers []domain.Iaas) string {
	rows := make([][]string, 0, len(providers))
	for _, p := range providers {
		params := make([]string, 0, len(p.Params))
		for _, param := range p.Params {
			params = append(params, param.Key)
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			string(p.Type),
			strings.Join(params, ", "),
		})
	}
	return render("Providers", []string{"ID", "NAME", "TYPE", "PARAMS"}, rows)
}

func BillingPeriods(periods []domain.BillingPeriod) string {
	rows := make([][]string, 0, len(periods))
	for _, b := range periods {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Account.Name,
			b.StartDate.Format("2006-01-02"),
			b.EndDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", b.Total),
			fmt.Sprintf("%.2f", b.Balance),
		})
	}
	return render("Billing Periods", []string{"ID", "ACCOUNT", "START", "END", "TOTAL", "BALANCE"}, rows)
}

func Templates(templates []domain.Template) string {
	rows := make([][]string, 0, len(templates))
	for _, tpl := range templates {
		rows = append(rows, []string{
			strconv.FormatInt(tpl.ID, 10),
			tpl.Name,
			tpl.Description,
			strconv.Itoa(len(tpl.Order)),
		})
	}
	return render("Templates", []string{"ID", "NAME", "DESCRIPTION", "ACCOUNTS"}, rows)
}

func Groups(groups []domain.Group) string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		names := make([]string, 0, len(g.Accounts))
		for _, a := range g.Accounts {
			names = append(names, a.Name)
		}
		rows = append(rows, []string{
			strconv.FormatInt(g.ID, 10),
			g.Name,
			strings.Join(names, ", "),
		})
	}
	return render("Groups", []string{"ID", "NAME", "ACCOUNTS"}, rows)
}

func Metrics(resp domain.MetricResponse) string {
	rows := make([][]string, 0, len(resp.Results))
	for _, m := range resp.Results {
		rows = append(rows, []string{
			m.Time.Format("2006-01-02 15:04"),
			strconv.FormatInt(m.AccountID, 10),
			strconv.FormatInt(m.Instances, 10),
		})
	}
	title := fmt.Sprintf("Metrics (%s)", resp.Granularity)
	return render(title, []string{"TIME", "ACCOUNT", "INSTANCES"}, rows)
}

func render(title string, headers []string, rows [][]string) string {
	s := newStyles()

	var b strings.Builder
	b.WriteString(s.title.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(s.empty.Render("(none)"))
		b.WriteString("\n")
		return b.String()
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = pad(h, widths[i])
	}
	b.WriteString(s.header.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		// First column is the row key.
		line := s.key.Render(cells[0]) + "  " + s.cell.Render(strings.Join(cells[1:], "  "))
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
