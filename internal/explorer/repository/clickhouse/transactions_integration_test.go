//go:build integration

package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

func (s *RepositorySuite) TestTransactionRoundTrip() {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	input := &model.Coin{ParentCoinInfo: hash("1"), PuzzleHash: hash("2"), Amount: 100}
	tx := newTransaction(hash("a"), 10, created, "cgn1alice", "cgn1bob", 60)
	tx.ConfirmationsNumber = 3
	tx.Input = input

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{tx}))
	s.Require().NoError(s.repo.InsertTransactionOutputs(s.testCtx, []model.TransactionOutput{
		{TransactionID: hash("a"), ChildTransactionID: hash("b"), Address: "cgn1carol", Amount: 60},
		{TransactionID: hash("a"), ChildTransactionID: hash("b"), Address: "cgn1carol", Amount: 60},
	}))

	got, err := s.repo.Transaction(s.testCtx, hash("a"))
	s.Require().NoError(err)
	s.Equal(tx.TransactionID, got.TransactionID)
	s.Equal(created, got.CreatedAt)
	s.Equal(input, got.Input)
	s.Equal(uint64(3), got.ConfirmationsNumber)
	s.Require().Len(got.Outputs, 1, "repeated links collapse to one")
	s.Equal("cgn1carol", got.Outputs[0].Address)
}

func (s *RepositorySuite) TestTransactionUpsertAndDelete() {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := newTransaction(hash("c"), 10, created, model.SentinelSender, "cgn1bob", 1)
	second := first
	second.Amount = 2

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{first}))
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{second}))

	got, err := s.repo.Transaction(s.testCtx, hash("c"))
	s.Require().NoError(err)
	s.Equal(uint64(2), got.Amount)
	s.Nil(got.Input)

	s.Require().NoError(s.repo.DeleteTransaction(s.testCtx, hash("c")))
	_, err = s.repo.Transaction(s.testCtx, hash("c"))
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositorySuite) TestListingAndAggregates() {
	day1 := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{
		newTransaction(hash("d"), 5, day1, model.SentinelSender, "cgn1a", 10),
		newTransaction(hash("e"), 6, day2, "cgn1a", "cgn1b", 4),
		newTransaction(hash("f"), 6, day2, "cgn1a", "cgn1c", 6),
	}))

	page, err := s.repo.ListTransactions(s.testCtx, 2, 0)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(hash("e"), page[0].TransactionID)
	s.Equal(hash("f"), page[1].TransactionID)

	page, err = s.repo.ListTransactions(s.testCtx, 10, 2)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(hash("d"), page[0].TransactionID)

	byHeight, err := s.repo.TransactionsByHeight(s.testCtx, 6)
	s.Require().NoError(err)
	s.Len(byHeight, 2)

	none, err := s.repo.TransactionsByHeight(s.testCtx, 99)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)

	days, err := s.repo.TransactionsPerDay(s.testCtx)
	s.Require().NoError(err)
	s.Equal([]model.DailyTransactions{
		{Day: "2024-03-01", TransactionsCount: 1},
		{Day: "2024-03-02", TransactionsCount: 2},
	}, days)
}

func (s *RepositorySuite) TestTransactionsPerDayGroupsByUTCDay() {
	jan1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{
		newTransaction(hash("0a"), 1, jan1, model.SentinelSender, "cgn1a", 1),
		newTransaction(hash("0b"), 1, jan1.Add(15*time.Hour), model.SentinelSender, "cgn1b", 1),
		newTransaction(hash("0c"), 2, jan2, model.SentinelSender, "cgn1c", 1),
	}))

	days, err := s.repo.TransactionsPerDay(s.testCtx)
	s.Require().NoError(err)
	s.Equal([]model.DailyTransactions{
		{Day: "2024-01-01", TransactionsCount: 2},
		{Day: "2024-01-02", TransactionsCount: 1},
	}, days)
}

func (s *RepositorySuite) TestAddressIndex() {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []model.AddressEntry{
		{Address: "cgn1a", TransactionID: hash("1"), Role: model.RoleReceiver, Amount: 10, CreatedAt: created},
		{Address: "cgn1a", TransactionID: hash("2"), Role: model.RoleSender, Amount: 4, CreatedAt: created.Add(time.Minute)},
		{Address: "cgn1b", TransactionID: hash("2"), Role: model.RoleReceiver, Amount: 4, CreatedAt: created.Add(time.Minute)},
	}
	s.Require().NoError(s.repo.InsertAddressTransactions(s.testCtx, entries))
	s.Require().NoError(s.repo.InsertAddressTransactions(s.testCtx, entries[:1]))

	got, err := s.repo.AddressTransactions(s.testCtx, "cgn1a")
	s.Require().NoError(err)
	s.Equal(entries[:2], got)

	count, err := s.repo.UniqueAddressCount(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(2), count)

	received, sent, err := s.repo.AddressTotals(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(14), received)
	s.Equal(uint64(4), sent)

	s.Require().NoError(s.repo.DeleteAddressTransaction(s.testCtx, "cgn1b", hash("2"), model.RoleReceiver))
	count, err = s.repo.UniqueAddressCount(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(1), count)

	gone, err := s.repo.AddressTransactions(s.testCtx, "cgn1b")
	s.Require().NoError(err)
	s.Empty(gone)
}
