// internal/bot/bot.go
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"budget-tracker/internal/allocation"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

const helpText = "💸 *50/30/20 budget*\n\n" +
	"Commands:\n" +
	"`/summary [YYYY-MM]` - needs/wants/future against your targets\n" +
	"`/insights [week|month|year]` - spending and income totals\n" +
	"`/spend 12.50 Groceries` - record an expense\n" +
	"`/earn 3000 [Salary]` - record income\n" +
	"`/split needs 60` - pin a bucket, the others rebalance\n" +
	"`/nudge wants -5` - move a bucket by a few points"

const setUpBudget = "⚙️ Set up your budget first"

var bucketIcons = map[domain.Bucket]string{
	domain.BucketNeeds:  "🏠",
	domain.BucketWants:  "🎉",
	domain.BucketFuture: "💰",
}

// userError: ошибка, текст которой можно показать пользователю.
type userError string

func (e userError) Error() string { return string(e) }

type Store interface {
	storage.ProfileStorage
	storage.CategoryStorage
	storage.TransactionStorage
}

// Sender is the part of *tgbotapi.BotAPI the bot replies through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Bot {
	return &Bot{store: store, now: time.Now}
}

// HandleUpdate отвечает на входящее сообщение; остальные типы апдейтов игнорируются.
func (b *Bot) HandleUpdate(ctx context.Context, api Sender, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	slog.Info("📥 Message received", "user_id", userID, "text", update.Message.Text)

	msg := tgbotapi.NewMessage(chatID, b.Handle(ctx, userID, update.Message.Text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := api.Send(msg); err != nil {
		slog.Error("Failed to send reply", "error", err, "chat_id", chatID)
	}
}

// Poll читает апдейты long polling'ом, пока не отменён ctx.
func (b *Bot) Poll(ctx context.Context, api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, api, update)
		}
	}
}

// Handle runs one chat command for userID and returns the reply text.
func (b *Bot) Handle(ctx context.Context, userID int64, raw string) string {
	text := sanitizeInput(fixEncoding(raw))
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "Unknown command. Send /help"
	}

	// "/summary@MyBot" в групповых чатах
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	var (
		reply string
		err   error
	)
	switch cmd {
	case "/start", "/help":
		reply = helpText
	case "/summary":
		reply, err = b.summary(ctx, userID, args)
	case "/insights":
		reply, err = b.insights(ctx, userID, args)
	case "/spend":
		reply, err = b.record(ctx, userID, domain.TransactionExpense, args)
	case "/earn":
		reply, err = b.record(ctx, userID, domain.TransactionIncome, args)
	case "/split":
		reply, err = b.rebalance(ctx, userID, args, allocation.SetBucket)
	case "/nudge":
		reply, err = b.rebalance(ctx, userID, args, allocation.AdjustBucket)
	default:
		reply = "Unknown command. Send /help"
	}

	if err != nil {
		var uerr userError
		if errors.As(err, &uerr) {
			return "❌ " + uerr.Error()
		}
		slog.Error("Bot command failed", "error", err, "user_id", userID, "command", cmd)
		return "❌ Something went wrong, try again later"
	}
	return reply
}

func (b *Bot) summary(ctx context.Context, userID int64, args []string) (string, error) {
	month := b.now().Format("2006-01")
	if len(args) > 0 {
		month = args[0]
	}
	start, end, err := allocation.MonthRange(month)
	if err != nil {
		return "", userError("Use: /summary YYYY-MM")
	}

	profile, err := b.store.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return setUpBudget, nil
	}

	txs, err := b.store.ListTransactions(ctx, userID, domain.TransactionFilter{From: &start, To: &end})
	if err != nil {
		return "", err
	}
	s, err := allocation.SummarizeAllocation(txs, profile, start, end)
	if err != nil {
		return "", err
	}
	compliance := allocation.ComplianceOf(s)

	lines := []string{
		fmt.Sprintf("📊 *Allocation for %s*", month),
		fmt.Sprintf("Income: %s", s.Income.StringFixed(2)),
	}
	for _, bucket := range domain.BucketOrder {
		c := compliance.Needs
		switch bucket {
		case domain.BucketWants:
			c = compliance.Wants
		case domain.BucketFuture:
			c = compliance.Future
		}
		mark := ""
		if c.Over {
			mark = " ⚠️"
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s / %s (%d%%)%s", bucketIcons[bucket], bucketTitle(bucket),
			s.Actual.Get(bucket).StringFixed(2), s.Targets.Get(bucket).StringFixed(2), c.Percent, mark))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) insights(ctx context.Context, userID int64, args []string) (string, error) {
	period := allocation.PeriodMonth
	if len(args) > 0 {
		period = strings.ToLower(args[0])
	}
	start, err := allocation.TrailingStart(period, b.now())
	if err != nil {
		return "", userError("Use: /insights week|month|year")
	}

	txs, err := b.store.ListTransactions(ctx, userID, domain.TransactionFilter{From: &start})
	if err != nil {
		return "", err
	}
	in := allocation.SummarizeInsights(txs, start)
	if in.TransactionCount == 0 {
		return fmt.Sprintf("📭 No transactions since %s", start), nil
	}

	lines := []string{
		fmt.Sprintf("📈 *Last %s* (since %s)", period, start),
		fmt.Sprintf("Income: %s", in.TotalIncome.StringFixed(2)),
		fmt.Sprintf("Expenses: %s", in.TotalExpenses.StringFixed(2)),
		fmt.Sprintf("Balance: %s", in.Balance.StringFixed(2)),
		fmt.Sprintf("Savings rate: %s%%", allocation.SavingsRate(in).StringFixed(1)),
	}
	if len(in.SpendingByCategory) > 0 {
		lines = append(lines, "\n*Top spending*")
		for i, c := range in.SpendingByCategory {
			if i == 3 {
				break
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", escape(c.Name), c.Value.StringFixed(2)))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) record(ctx context.Context, userID int64, txType domain.TransactionType, args []string) (string, error) {
	usage := "Use: /spend <amount> <category>"
	if txType == domain.TransactionIncome {
		usage = "Use: /earn <amount> [category]"
	}
	if len(args) == 0 || (txType == domain.TransactionExpense && len(args) < 2) {
		return "", userError(usage)
	}

	amount, err := decimal.NewFromString(strings.Replace(args[0], ",", ".", 1))
	if err != nil || !amount.IsPositive() {
		return "", userError(fmt.Sprintf("Invalid amount: %q", escape(args[0])))
	}
	amount = amount.Round(2)

	tx := domain.Transaction{
		UserID: userID,
		Amount: amount,
		Type:   txType,
		Date:   domain.DateOf(b.now()),
	}
	label := "uncategorized"
	if len(args) > 1 {
		name := strings.Join(args[1:], " ")
		category, err := b.findCategory(ctx, userID, txType, name)
		if err != nil {
			return "", err
		}
		if category == nil {
			return "", userError(fmt.Sprintf("Category not found: %s", escape(name)))
		}
		tx.CategoryID = &category.ID
		label = escape(category.Name)
	}

	if _, err := b.store.CreateTransaction(ctx, tx); err != nil {
		return "", err
	}
	if txType == domain.TransactionIncome {
		return fmt.Sprintf("✅ Earned %s (%s)", amount.StringFixed(2), label), nil
	}
	return fmt.Sprintf("✅ Spent %s on %s", amount.StringFixed(2), label), nil
}

func (b *Bot) findCategory(ctx context.Context, userID int64, txType domain.TransactionType, name string) (*domain.Category, error) {
	categories, err := b.store.ListCategories(ctx, userID, txType)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (b *Bot) rebalance(ctx context.Context, userID int64, args []string, apply func(allocation.Split, domain.Bucket, int) allocation.Split) (string, error) {
	if len(args) != 2 {
		return "", userError("Use: /split <needs|wants|future> <percent> or /nudge <bucket> <delta>")
	}
	bucket, err := domain.ParseBucket(strings.ToLower(args[0]))
	if err != nil {
		return "", userError("Bucket must be one of needs, wants, future")
	}
	// На переполнении Atoi отдаёт MaxInt/MinInt, дальше это просто зажимается в 0..100
	n, err := strconv.Atoi(args[1])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", userError(fmt.Sprintf("Invalid number: %q", escape(args[1])))
	}

	profile, err := b.store.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return setUpBudget, nil
	}

	split := apply(allocation.SplitOf(*profile), bucket, n)
	needs, wants, future := split.Percentages()
	if _, err := b.store.UpdateProfile(ctx, userID, domain.ProfileUpdate{
		NeedsPercentage:  &needs,
		WantsPercentage:  &wants,
		FuturePercentage: &future,
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ New split: 🏠 %d%% / 🎉 %d%% / 💰 %d%%", split.Needs, split.Wants, split.Future), nil
}

// escape экранирует пользовательский текст под ModeMarkdown.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func bucketTitle(b domain.Bucket) string {
	switch b {
	case domain.BucketNeeds:
		return "Needs"
	case domain.BucketWants:
		return "Wants"
	case domain.BucketFuture:
		return "Future"
	}
	return string(b)
}
