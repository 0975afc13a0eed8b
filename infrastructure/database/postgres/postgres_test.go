package postgres

// Connection precisa satisfazer Conn: os repositórios dependem da interface.
var _ Conn = (*Connection)(nil)
