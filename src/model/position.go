package model

import "strings"

const SideBuy = "BUY"
const SideSell = "SELL"

const PositionSideLong = "LONG"
const PositionSideShort = "SHORT"

type PositionType string

const PositionTypeLong PositionType = "Long"
const PositionTypeShort PositionType = "Short"

func (p PositionType) IsLong() bool {
	return p == PositionTypeLong
}

func (p PositionType) IsShort() bool {
	return p == PositionTypeShort
}

// EntrySide is the order side that opens the position.
func (p PositionType) EntrySide() string {
	if p.IsLong() {
		return SideBuy
	}

	return SideSell
}

// ExitSide is the order side that closes the position.
func (p PositionType) ExitSide() string {
	if p.IsLong() {
		return SideSell
	}

	return SideBuy
}

// PositionSide is only sent to the exchange in Hedge mode.
func (p PositionType) PositionSide() string {
	if p.IsLong() {
		return PositionSideLong
	}

	return PositionSideShort
}

type Command string

const CommandLong Command = "l"
const CommandShort Command = "s"
const CommandQuit Command = "q"
const CommandUnknown Command = ""

func ParseCommand(input string) Command {
	switch Command(strings.ToLower(strings.TrimSpace(input))) {
	case CommandLong:
		return CommandLong
	case CommandShort:
		return CommandShort
	case CommandQuit:
		return CommandQuit
	}

	return CommandUnknown
}

func (c Command) ToPositionType() (PositionType, bool) {
	switch c {
	case CommandLong:
		return PositionTypeLong, true
	case CommandShort:
		return PositionTypeShort, true
	}

	return "", false
}
