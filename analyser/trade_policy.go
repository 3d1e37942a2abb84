package main

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/api"
	"github.com/wayming/Automated-Trading-System/news"
)

const (
	buyThreshold = 50
	buyQuantity  = 10.0
)

// tradeExecutor is the slice of ExecutorProxy the policy needs.
type tradeExecutor interface {
	ExecuteTrade(ctx context.Context, symbol, trade string, amount float64) (*api.TradeResponse, error)
}

// TradePolicy turns a structured analysis into at most one order: a
// short-term score above the threshold on a named stock buys a fixed
// quantity. Everything here is best-effort; a policy failure never
// fails the message.
type TradePolicy struct {
	executor tradeExecutor
	log      *zap.Logger
}

func NewTradePolicy(executor tradeExecutor, log *zap.Logger) *TradePolicy {
	return &TradePolicy{executor: executor, log: log}
}

func (tp *TradePolicy) Evaluate(ctx context.Context, raw json.RawMessage) {
	if len(raw) == 0 {
		tp.log.Info("no trade operation for empty analysis results")
		return
	}
	result, err := news.ParseStructured(raw)
	if err != nil {
		tp.log.Error("could not parse analysis result", zap.Error(err))
		return
	}
	if result.StockCode == "" {
		tp.log.Info("no impacted stock")
		return
	}
	score, ok := news.ParseScore(result.Analysis.ShortTerm.Score)
	if !ok {
		tp.log.Error("score is missing or invalid",
			zap.String("score", result.Analysis.ShortTerm.Score))
		return
	}

	if score > buyThreshold {
		tp.executeBuy(ctx, result, score)
	} else {
		tp.log.Info("score is not a buy signal", zap.Int("score", score))
	}
	tp.log.Info("evaluation done")
}

func (tp *TradePolicy) executeBuy(ctx context.Context, result *news.StructuredAnalysis, score int) {
	tp.log.Info("positive signal",
		zap.String("stock", result.StockName),
		zap.String("ticker", result.StockCode),
		zap.Int("short_term_score", score),
	)

	resp, err := tp.executor.ExecuteTrade(ctx, result.StockCode, "buy", buyQuantity)
	if err != nil {
		tp.log.Error("trade execution failed",
			zap.String("ticker", result.StockCode),
			zap.Error(err),
		)
		return
	}

	tp.log.Info("trade executed",
		zap.String("message", resp.GetMessage()),
		zap.Float64("cash", resp.GetCashBalance()),
		zap.Any("portfolio", resp.GetPortfolio()),
	)
}
