package level

import "fmt"

// MirrorState is one of the two diagonal placements of a mirror
type MirrorState int

const (
	// Forward slash `/` position
	Default MirrorState = iota
	// Backward slash `\` position
	Flipped
)

func (s MirrorState) Toggle() MirrorState {
	if s == Default {
		return Flipped
	}
	return Default
}

func (s MirrorState) String() string {
	switch s {
	case Default:
		return "default"
	case Flipped:
		return "flipped"
	}
	return fmt.Sprintf("MirrorState(%d)", int(s))
}

type Kind int

const (
	Empty Kind = iota
	Blocking
	Mirror
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Blocking:
		return "blocking"
	case Mirror:
		return "mirror"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// BlockType classifies a single cell. Mirror is only meaningful when Kind is Mirror.
type BlockType struct {
	Kind   Kind
	Mirror MirrorState
}

var (
	EmptyBlock    = BlockType{Kind: Empty}
	BlockingBlock = BlockType{Kind: Blocking}
)

func MirrorBlock(state MirrorState) BlockType {
	return BlockType{Kind: Mirror, Mirror: state}
}

func (b BlockType) IsMirror() bool {
	return b.Kind == Mirror
}

// ParseBlockType decodes a single cell character.
func ParseBlockType(c rune) (BlockType, error) {
	switch c {
	case 'o':
		return EmptyBlock, nil
	case 'x':
		return BlockingBlock, nil
	case '/':
		return MirrorBlock(Default), nil
	case '\\':
		return MirrorBlock(Flipped), nil
	}
	return BlockType{}, &UnrecognizedBlockError{Char: c, Row: -1, Column: -1}
}

// Rune is the inverse of ParseBlockType
func (b BlockType) Rune() rune {
	switch b.Kind {
	case Blocking:
		return 'x'
	case Mirror:
		if b.Mirror == Flipped {
			return '\\'
		}
		return '/'
	}
	return 'o'
}

func (b BlockType) String() string {
	return string(b.Rune())
}
