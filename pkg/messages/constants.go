package messages

const (
	MsgMenuHeader         = "menuHeader"
	MsgMenuAddTask        = "menuAddTask"
	MsgMenuListTasks      = "menuListTasks"
	MsgMenuListByPriority = "menuListByPriority"
	MsgMenuUpdateStatus   = "menuUpdateStatus"
	MsgMenuDeleteTask     = "menuDeleteTask"
	MsgMenuFilterByStatus = "menuFilterByStatus"
	MsgMenuOverdueTasks   = "menuOverdueTasks"
	MsgMenuSummary        = "menuSummary"
	MsgMenuQuit           = "menuQuit"

	MsgPromptChoice      = "promptChoice"
	MsgPromptTitle       = "promptTitle"
	MsgPromptDescription = "promptDescription"
	MsgPromptPriority    = "promptPriority"
	MsgPromptDueDate     = "promptDueDate"
	MsgPromptTaskID      = "promptTaskID"
	MsgPromptStatus      = "promptStatus"

	MsgTaskCreated        = "taskCreated"
	MsgTaskDeleted        = "taskDeleted"
	MsgTaskUpdated        = "taskUpdated"
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidStatus      = "invalidStatus"
	MsgInvalidChoice      = "invalidChoice"
	MsgUnexpectedError    = "unexpectedError"
	MsgNoTasks            = "noTasks"

	MsgSummaryTotal          = "summaryTotal"
	MsgSummaryCompleted      = "summaryCompleted"
	MsgSummaryPending        = "summaryPending"
	MsgSummaryOverdue        = "summaryOverdue"
	MsgSummaryCompletionRate = "summaryCompletionRate"

	MsgGoodbye = "goodbye"
)
