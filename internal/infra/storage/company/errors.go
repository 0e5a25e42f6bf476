package company

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда у тенанта нет записи компании
	ErrCompanyNotFound = errors.New("company.repository: company not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("company.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("company.repository: failed to scan row")
)
