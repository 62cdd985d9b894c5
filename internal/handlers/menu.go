package handlers

import (
	"context"
	"strings"
)

type command struct {
	name        string
	usage       string
	description string
	run         func(ctx context.Context, req commandRequest)
}

func (h *BotHandler) buildCommands() []command {
	return []command{
		{name: "help", description: "show this help", run: h.handleHelp},
		{name: "start", description: "show this help", run: h.handleHelp},
		{name: "username", description: "show your stored username", run: h.handleUsername},
		{name: "usernameandage", usage: "<username> <age>", description: "echo a username and an age", run: h.handleUsernameAndAge},
		{name: "login", description: "log in to the accounting service", run: h.handleLogin},
		{name: "logout", description: "forget your session", run: h.handleLogout},
		{name: "status", description: "show login status", run: h.handleStatus},
		{name: "categories", usage: "[page]", description: "list categories", run: h.handleListCategories},
		{name: "addcategory", usage: "<code> <INCOME|EXPENSE> <name>", description: "create a category", run: h.handleCreateCategory},
		{name: "expense", usage: "<amount> <category> [description]", description: "record an expense for today", run: h.handleCreateExpense},
		{name: "today", description: "today's expenses by category", run: h.handleTodaySummary},
		{name: "month", usage: "[YYYY-MM] [page]", description: "transactions of a month", run: h.handleMonthTransactions},
	}
}

func (h *BotHandler) lookupCommand(name string) (command, bool) {
	name = strings.ToLower(name)
	for _, cmd := range h.commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func (h *BotHandler) helpText() string {
	var b strings.Builder
	b.WriteString("These commands are supported:\n")
	for _, cmd := range h.commands {
		if cmd.name == "start" {
			continue
		}
		b.WriteString("/" + cmd.name)
		if cmd.usage != "" {
			b.WriteString(" " + cmd.usage)
		}
		b.WriteString(" - " + cmd.description + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
