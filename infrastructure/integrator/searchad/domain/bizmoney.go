package domain

// Bizmoney é a resposta de /billing/bizmoney. O saldo exibido pela plataforma
// é a soma dos subcomponentes, não apenas o campo bizmoney.
type Bizmoney struct {
	Bizmoney       int64 `json:"bizmoney"`
	PayMoney       int64 `json:"payMoney"`
	FreeMoney      int64 `json:"freeMoney"`
	CouponMoney    int64 `json:"couponMoney"`
	PayCouponMoney int64 `json:"payCouponMoney"`
}

// Total soma os subcomponentes de saldo (pago, gratuito, cupom e cupom pago)
// para bater com o total exibido pela plataforma.
func (b *Bizmoney) Total() int64 {
	return b.PayMoney + b.FreeMoney + b.CouponMoney + b.PayCouponMoney
}
