package share

// VERSION 版本号
const VERSION = "0.3.0"

// BUILDNAME 制品名称
const BUILDNAME = "vpm"

const PREFIX = "VPM_"

const PATH = ".vpm"

const SETTINGS_FILE = "vpm.yaml"

const MCP_SERVER_NAME = "vpm viewpoint manager"

// 交换格式（Navisworks exchange XML）相关常量
const (
	EXCHANGE_TAG      = "exchange"
	CONTAINER_TAG     = "viewpoints"
	FOLDER_TAG        = "viewfolder"
	VIEW_TAG          = "view"
	NAME_ATTR         = "name"
	ID_ATTR           = "guid"
	XSI_NAMESPACE     = "http://www.w3.org/2001/XMLSchema-instance"
	EXCHANGE_SCHEMA   = "http://download.autodesk.com/us/navisworks/schemas/nw-exchange-12.0.xsd"
	EXCHANGE_UNITS    = "m"
	EXCHANGE_FILENAME = "merged_viewpoints.nwd"
	EXCHANGE_FILEPATH = ""
)

// 缺省名称：源文件缺少 name 属性时使用
const (
	ROOT_NAME           = "Root"
	DEFAULT_FOLDER_NAME = "Folder"
	DEFAULT_VIEW_NAME   = "View"
	DEFAULT_POOL_NAME   = "Unnamed view"
)

// INFO_PREVIEW_LIMIT 节点信息中 XML 预览的最大长度
const INFO_PREVIEW_LIMIT = 800
