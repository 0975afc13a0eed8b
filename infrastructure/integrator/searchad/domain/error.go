package domain

import "errors"

var (
	// ErrForbidden indica 403 da API: a credencial não tem acesso à conta ou
	// ao recurso. Não deve ser retentado; o chamador pula a conta.
	ErrForbidden = errors.New("searchad: acesso negado (403)")

	// ErrMaxRetries indica que o orçamento de tentativas se esgotou sem
	// sucesso. O chamador trata como "sem dados", nunca como falha do lote.
	ErrMaxRetries = errors.New("searchad: número máximo de tentativas excedido")
)
