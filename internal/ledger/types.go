package ledger

import (
	"strconv"

	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

var transactionTypeNames = map[symbol.TransactionType]string{
	symbol.TypeTransfer:            "transfer",
	symbol.TypeMosaicDefinition:    "mosaic_definition",
	symbol.TypeMosaicSupplyChange:  "mosaic_supply_change",
	symbol.TypeNamespaceRegister:   "namespace_registration",
	symbol.TypeAggregateBonded:     "aggregate_bonded",
	symbol.TypeAggregateComplete:   "aggregate_complete",
	symbol.TypeHashLock:            "hash_lock",
	symbol.TypeAccountKeyLink:      "account_key_link",
	symbol.TypeMultisigAccountEdit: "multisig_account_modification",
}

// TransactionTypeName maps a wire type code to its name, or "type_<code>" when unknown.
func TransactionTypeName(code uint64) string {
	if code <= 0xFFFF {
		if name, ok := transactionTypeNames[symbol.TransactionType(code)]; ok {
			return name
		}
	}
	return "type_" + strconv.FormatUint(code, 10)
}
