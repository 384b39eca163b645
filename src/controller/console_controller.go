package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"gitlab.com/open-soft/go-futures-bot/src/model"
	"gitlab.com/open-soft/go-futures-bot/src/service/exchange"
)

const clearScreen = "\033[H\033[2J"

type ConsoleController struct {
	Input         io.Reader
	Output        io.Writer
	OrderExecutor exchange.OrderExecutorInterface
	Config        *model.TradeConfig
}

func (c *ConsoleController) SetupLeverageAction(ctx context.Context) error {
	settings, err := c.OrderExecutor.SetupLeverage(ctx)
	if err != nil {
		c.printf("Error setting leverage: %s\n", err.Error())
		return err
	}

	c.printf("Leverage set to %dx for %s.\n", settings.Leverage, c.Config.TradingPair)

	return nil
}

// Run blocks until 'q', end of input or ctx cancellation.
// On cancellation the reader goroutine stays blocked in Scan until Input
// yields a line or is closed, so callers reusing Input should close it.
func (c *ConsoleController) Run(ctx context.Context) error {
	c.printf("%s\n", clearScreen)
	c.printf("Press 'L' and Enter to create a Long Order, 'S' and Enter for a Short Order, or 'Q' to quit.\n")

	done := make(chan struct{})
	defer close(done)

	lines, readErr := c.readLines(done)

	for {
		c.printf("Your choice: ")

		select {
		case <-ctx.Done():
			c.printf("\nExiting...\n")
			return nil
		case line, ok := <-lines:
			if !ok {
				c.printf("\nExiting...\n")
				return <-readErr
			}

			command := model.ParseCommand(line)
			if command == model.CommandQuit {
				c.printf("\nExiting...\n")
				return nil
			}

			position, isOrder := command.ToPositionType()
			if !isOrder {
				c.printf("Invalid input. Please enter 'L', 'S', or 'Q'.\n")
				continue
			}

			_ = c.CreateOrderAction(ctx, position)
		}
	}
}

func (c *ConsoleController) CreateOrderAction(ctx context.Context, position model.PositionType) error {
	summary, err := c.OrderExecutor.CreateOrder(ctx, position)
	if err != nil {
		var unprotected *model.UnprotectedPositionError
		switch true {
		case errors.As(err, &unprotected):
			c.printf(
				"\nWARNING: %s entry order %d is filled but take profit was NOT placed, close the position manually.\n%s\n",
				position,
				unprotected.Entry.OrderId,
				err.Error(),
			)
		case errors.Is(err, model.ErrPriceUnavailable):
			c.printf("\nError: Unable to fetch current price for %s order.\n", position)
		default:
			c.printf("Error creating %s order: %s\n", position, err.Error())
		}

		return err
	}

	c.printf("%s\n", summary.String())

	return nil
}

func (c *ConsoleController) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.Input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (c *ConsoleController) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Output, format, args...)
}
