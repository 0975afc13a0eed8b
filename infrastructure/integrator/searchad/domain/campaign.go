package domain

type Campaign struct {
	NccCampaignID string `json:"nccCampaignId"`
	CustomerID    int64  `json:"customerId"`
	Name          string `json:"name"`
	CampaignTp    string `json:"campaignTp"`
	Status        string `json:"status"`
}

// CampaignTpShopping identifica campanhas de busca de shopping, as únicas
// que possuem materiais estendidos coletáveis.
const CampaignTpShopping = "SHOPPING"
