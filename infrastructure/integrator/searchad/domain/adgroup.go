package domain

type Adgroup struct {
	NccAdgroupID  string `json:"nccAdgroupId"`
	NccCampaignID string `json:"nccCampaignId"`
	CustomerID    int64  `json:"customerId"`
	Name          string `json:"name"`
	Status        string `json:"status"`
}

type AdKeyword struct {
	NccKeywordID string `json:"nccKeywordId"`
	NccAdgroupID string `json:"nccAdgroupId"`
	CustomerID   int64  `json:"customerId"`
	Keyword      string `json:"keyword"`
	Status       string `json:"status"`
}
