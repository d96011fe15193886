package model

// Tokens de permiso. La autorización es subconjunto puro: una operación exige
// un conjunto de tokens y el usuario debe tenerlos todos en su conjunto
// efectivo (rol ∪ extras del usuario).
const (
	PermUsersManage  = "users.manage"
	PermRolesManage  = "roles.manage"
	PermSystemConfig = "system.config"

	PermProvidersView   = "providers.view"
	PermProvidersCreate = "providers.create"
	PermProvidersEdit   = "providers.edit"
	PermProvidersDelete = "providers.delete"

	PermProductsView   = "products.view"
	PermProductsCreate = "products.create"
	PermProductsEdit   = "products.edit"
	PermProductsDelete = "products.delete"

	PermIngresosView   = "ingresos.view"
	PermIngresosCreate = "ingresos.create"
	PermIngresosEdit   = "ingresos.edit"
	PermIngresosDelete = "ingresos.delete"

	PermInventoryViewSelf = "inventory.viewSelf"
	PermInventoryViewAll  = "inventory.viewAll"
	PermInventoryAssign   = "inventory.assign"

	PermPedidosView    = "pedidos.view"
	PermPedidosCreate  = "pedidos.create"
	PermPedidosApprove = "pedidos.approve"
	PermPedidosReject  = "pedidos.reject"
	PermPedidosDeliver = "pedidos.deliver"

	PermReportsView     = "reports.view"
	PermReportsExport   = "reports.export"
	PermReportsAdvanced = "reports.advanced"

	PermAreasManage       = "areas.manage"
	PermUbicacionesManage = "ubicaciones.manage"
	PermUnidadesManage    = "unidades.manage"
)

// PermisosTodos enumera todos los tokens conocidos, en el orden del catálogo.
var PermisosTodos = []string{
	PermUsersManage, PermRolesManage, PermSystemConfig,
	PermProvidersView, PermProvidersCreate, PermProvidersEdit, PermProvidersDelete,
	PermProductsView, PermProductsCreate, PermProductsEdit, PermProductsDelete,
	PermIngresosView, PermIngresosCreate, PermIngresosEdit, PermIngresosDelete,
	PermInventoryViewSelf, PermInventoryViewAll, PermInventoryAssign,
	PermPedidosView, PermPedidosCreate, PermPedidosApprove, PermPedidosReject, PermPedidosDeliver,
	PermReportsView, PermReportsExport, PermReportsAdvanced,
	PermAreasManage, PermUbicacionesManage, PermUnidadesManage,
}

// Conjuntos base de los roles predefinidos.
var (
	PermisosEncargado = []string{
		PermProvidersView, PermProvidersCreate, PermProvidersEdit, PermProvidersDelete,
		PermProductsView, PermProductsCreate, PermProductsEdit, PermProductsDelete,
		PermIngresosView, PermIngresosCreate, PermIngresosEdit,
		PermInventoryViewSelf, PermInventoryViewAll, PermInventoryAssign,
		PermPedidosView, PermPedidosCreate, PermPedidosApprove, PermPedidosReject, PermPedidosDeliver,
		PermReportsView, PermReportsExport,
		PermAreasManage, PermUbicacionesManage, PermUnidadesManage,
	}

	PermisosTrabajador = []string{
		PermProductsView,
		PermInventoryViewSelf,
		PermPedidosView, PermPedidosCreate,
	}
)
