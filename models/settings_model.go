package models

type AppSettings struct {
	WorkerName   string `json:"workerName"`
	ManagerPhone string `json:"managerPhone"`
}
