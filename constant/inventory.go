package constant

type OperationType string

const (
	OperationReserve               OperationType = "reserve"
	OperationIncome                OperationType = "income"
	OperationIncomeCancel          OperationType = "income_cancel"
	OperationSale                  OperationType = "sale"
	OperationReturn                OperationType = "return"
	OperationManualAdjustment      OperationType = "manual_adjustment"
	OperationImportFromMarketplace OperationType = "import_from_marketplace"
)

type WarehouseType string

const (
	WarehouseTypeMain        WarehouseType = "main"
	WarehouseTypeMarketplace WarehouseType = "marketplace"
	WarehouseTypeTransit     WarehouseType = "transit"
)
