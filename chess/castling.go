package chess

// CastlingRights tracks the four independent castling permissions.
// Once a right is revoked it is never restored within a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the initial rights with all four available.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Can reports whether the given color may still castle on the given wing.
func (cr CastlingRights) Can(color Color, kingside bool) bool {
	if color == White {
		if kingside {
			return cr.WhiteKingside
		}
		return cr.WhiteQueenside
	}
	if kingside {
		return cr.BlackKingside
	}
	return cr.BlackQueenside
}

// Revoke returns rights with the given color/wing permission removed.
func (cr CastlingRights) Revoke(color Color, kingside bool) CastlingRights {
	switch {
	case color == White && kingside:
		cr.WhiteKingside = false
	case color == White:
		cr.WhiteQueenside = false
	case kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
	return cr
}

// RevokeAll returns rights with both wings removed for the given color.
func (cr CastlingRights) RevokeAll(color Color) CastlingRights {
	if color == White {
		cr.WhiteKingside = false
		cr.WhiteQueenside = false
	} else {
		cr.BlackKingside = false
		cr.BlackQueenside = false
	}
	return cr
}

// mask packs the four rights into 4 bits for key hashing.
func (cr CastlingRights) mask() int {
	m := 0
	if cr.WhiteKingside {
		m |= 1
	}
	if cr.WhiteQueenside {
		m |= 2
	}
	if cr.BlackKingside {
		m |= 4
	}
	if cr.BlackQueenside {
		m |= 8
	}
	return m
}
