package lexer

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }
