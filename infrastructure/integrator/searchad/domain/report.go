package domain

// Estados do job assíncrono de relatório (/stat-reports). REGIST e RUNNING
// são transitórios; BUILT, ERROR e NONE são terminais.
const (
	ReportStatusRegist  = "REGIST"
	ReportStatusRunning = "RUNNING"
	ReportStatusBuilt   = "BUILT"
	ReportStatusError   = "ERROR"
	ReportStatusNone    = "NONE"
)

// ReportTpAd produz um relatório com colunas de campanha, palavra-chave e
// anúncio sobre as mesmas linhas de origem.
const ReportTpAd = "AD"

type ReportJob struct {
	ReportJobID int64  `json:"reportJobId"`
	ReportTp    string `json:"reportTp"`
	StatDt      string `json:"statDt"`
	Status      string `json:"status"`
	DownloadURL string `json:"downloadUrl"`
}

type ReportJobRequest struct {
	ReportTp string `json:"reportTp"`
	StatDt   string `json:"statDt"`
}
