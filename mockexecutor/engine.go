package main

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wayming/Automated-Trading-System/common/api"
)

// Every trade fills at a fixed quote; this is a paper-trading stub,
// not a market simulator.
const quotePrice = 100.0

// TradingEngine implements TradeExecutor against in-memory cash and
// portfolio state.
type TradingEngine struct {
	api.UnimplementedTradeExecutorServer

	log *zap.Logger

	mu        sync.Mutex
	cash      float64
	portfolio map[string]float64
}

func NewTradingEngine(initialCash float64, log *zap.Logger) *TradingEngine {
	return &TradingEngine{
		log:       log,
		cash:      initialCash,
		portfolio: make(map[string]float64),
	}
}

func (e *TradingEngine) ExecuteTrade(ctx context.Context, req *api.TradeRequest) (*api.TradeResponse, error) {
	symbol := req.GetSymbol()
	trade := strings.ToLower(req.GetTrade())
	amount := req.GetAmount()

	if symbol == "" {
		return nil, status.Error(codes.InvalidArgument, "symbol is required")
	}
	if amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch trade {
	case "buy":
		cost := quotePrice * amount
		if e.cash < cost {
			return nil, status.Error(codes.InvalidArgument, "insufficient funds")
		}
		e.cash -= cost
		e.portfolio[symbol] += amount
		e.log.Info("bought",
			zap.String("symbol", symbol),
			zap.Float64("amount", amount),
			zap.Float64("price", quotePrice),
		)
	case "sell":
		if e.portfolio[symbol] < amount {
			return nil, status.Error(codes.InvalidArgument, "not enough holdings")
		}
		e.portfolio[symbol] -= amount
		e.cash += quotePrice * amount
		e.log.Info("sold",
			zap.String("symbol", symbol),
			zap.Float64("amount", amount),
			zap.Float64("price", quotePrice),
		)
	default:
		return nil, status.Error(codes.InvalidArgument, "trade must be 'buy' or 'sell'")
	}

	return &api.TradeResponse{
		Message:     "Trade executed",
		CashBalance: e.cash,
		Portfolio:   e.positions(),
	}, nil
}

// positions snapshots the portfolio sorted by symbol. Caller holds the
// lock.
func (e *TradingEngine) positions() []*api.Position {
	out := make([]*api.Position, 0, len(e.portfolio))
	for symbol, quantity := range e.portfolio {
		out = append(out, &api.Position{Symbol: symbol, Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
