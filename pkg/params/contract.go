package params

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

const defaultContractGas = 100_000

// ExecuteContractParams is the network-ready bundle for a contract call on
// the write path. Calldata is fully ABI-encoded: selector plus arguments.
type ExecuteContractParams struct {
	ContractID    hiero.ContractID
	Gas           uint64
	PayableAmount hiero.Hbar
	Calldata      []byte
	FunctionName  string
	Scheduling    *Scheduling
}

var executeContractSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("contractId", "Contract to call.").Req(),
		schema.String("functionName", "Solidity function signature, e.g. transfer(address,uint256). Required unless data is given."),
		schema.Array("functionParameters", "Arguments matching the signature, in order.", schema.Any("", "One argument; integers may be given as strings to avoid precision loss.")),
		schema.String("data", "Pre-encoded calldata as hex; mutually exclusive with functionName."),
		schema.Integer("gas", "Gas limit for the call.").NonNeg().WithDefault(int64(defaultContractGas)),
		schema.Number("payableAmount", "HBAR to send along with the call.").NonNeg().WithDefault(0.0),
	}, SchedulingFields()...)...,
)

// ExecuteContractSchema describes the execute_contract input shape.
func ExecuteContractSchema() *schema.Object { return executeContractSchema }

// NormalizeExecuteContract validates an execute_contract call and encodes
// the calldata, either from a function signature plus arguments or from a
// raw hex data string.
func NormalizeExecuteContract(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*ExecuteContractParams, error) {
	parsed, err := executeContractSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	contractID, err := hiero.ParseContractID(stringArg(parsed, "contractId"))
	if err != nil {
		return nil, err
	}
	calldata, name, err := encodeCalldata(parsed)
	if err != nil {
		return nil, err
	}

	gas, _ := int64Arg(parsed, "gas")
	payable, _, err := decimalArg(parsed, "payableAmount")
	if err != nil {
		return nil, err
	}
	amount, err := hiero.HbarFromDecimal(payable)
	if err != nil {
		return nil, err
	}

	p := &ExecuteContractParams{
		ContractID:    contractID,
		Gas:           uint64(gas),
		PayableAmount: amount,
		Calldata:      calldata,
		FunctionName:  name,
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CallContractParams is the network-ready bundle for a read-only contract
// call evaluated by the mirror node.
type CallContractParams struct {
	ContractID   hiero.ContractID
	Calldata     []byte
	FunctionName string
}

var callContractSchema = schema.NewObject(
	schema.String("contractId", "Contract to query.").Req(),
	schema.String("functionName", "Solidity function signature, e.g. balanceOf(address). Required unless data is given."),
	schema.Array("functionParameters", "Arguments matching the signature, in order.", schema.Any("", "One argument; integers may be given as strings to avoid precision loss.")),
	schema.String("data", "Pre-encoded calldata as hex; mutually exclusive with functionName."),
)

// CallContractSchema describes the call_contract input shape.
func CallContractSchema() *schema.Object { return callContractSchema }

// NormalizeCallContract validates a call_contract query.
func NormalizeCallContract(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*CallContractParams, error) {
	parsed, err := callContractSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	contractID, err := hiero.ParseContractID(stringArg(parsed, "contractId"))
	if err != nil {
		return nil, err
	}
	calldata, name, err := encodeCalldata(parsed)
	if err != nil {
		return nil, err
	}
	return &CallContractParams{ContractID: contractID, Calldata: calldata, FunctionName: name}, nil
}

// encodeCalldata produces ABI calldata from either the raw data argument or
// a function signature plus positional arguments.
func encodeCalldata(parsed map[string]any) ([]byte, string, error) {
	rawData := stringArg(parsed, "data")
	signature := stringArg(parsed, "functionName")
	switch {
	case rawData != "" && signature != "":
		return nil, "", core.NewBusinessRuleError("functionName and data are mutually exclusive")
	case rawData != "":
		data, err := hexutil.Decode(ensureHexPrefix(rawData))
		if err != nil {
			return nil, "", fmt.Errorf("invalid calldata hex: %w", err)
		}
		return data, "", nil
	case signature != "":
		data, name, err := packFunctionCall(signature, anySliceArg(parsed, "functionParameters"))
		return data, name, err
	default:
		return nil, "", core.NewBusinessRuleError("either functionName or data must be provided")
	}
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}

// packFunctionCall ABI-encodes a call from a human-readable signature such
// as "transfer(address,uint256)" and loosely typed arguments.
func packFunctionCall(signature string, args []any) ([]byte, string, error) {
	open := strings.IndexByte(signature, '(')
	if open <= 0 || !strings.HasSuffix(signature, ")") {
		return nil, "", core.NewBusinessRuleError("invalid function signature %q, expected name(type,...)", signature)
	}
	name := signature[:open]
	var typeNames []string
	if inner := signature[open+1 : len(signature)-1]; inner != "" {
		typeNames = strings.Split(inner, ",")
	}
	if len(typeNames) != len(args) {
		return nil, "", core.NewBusinessRuleError("function %s expects %d arguments, got %d", signature, len(typeNames), len(args))
	}

	inputs := make(abi.Arguments, 0, len(typeNames))
	values := make([]any, 0, len(typeNames))
	for i, tn := range typeNames {
		tn = strings.TrimSpace(tn)
		typ, err := abi.NewType(tn, "", nil)
		if err != nil {
			return nil, "", fmt.Errorf("unsupported ABI type %q: %w", tn, err)
		}
		inputs = append(inputs, abi.Argument{Type: typ})
		value, err := convertABIArg(tn, typ, args[i])
		if err != nil {
			return nil, "", fmt.Errorf("argument %d of %s: %w", i, signature, err)
		}
		values = append(values, value)
	}

	method := abi.NewMethod(name, name, abi.Function, "", false, false, inputs, nil)
	packed, err := inputs.Pack(values...)
	if err != nil {
		return nil, "", fmt.Errorf("packing arguments for %s: %w", signature, err)
	}
	return append(method.ID, packed...), name, nil
}

// convertABIArg coerces a JSON-shaped argument into the Go value the ABI
// packer expects for the given type.
func convertABIArg(typeName string, typ abi.Type, arg any) (any, error) {
	switch typ.T {
	case abi.AddressTy:
		s, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("address argument must be a string, got %T", arg)
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.UintTy, abi.IntTy:
		n := new(big.Int)
		switch v := arg.(type) {
		case string:
			if _, ok := n.SetString(v, 10); !ok {
				return nil, fmt.Errorf("invalid integer %q", v)
			}
		case int64:
			n.SetInt64(v)
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("integer argument must not be fractional, got %v", v)
			}
			n.SetInt64(int64(v))
		default:
			return nil, fmt.Errorf("integer argument must be a number or string, got %T", arg)
		}
		if typ.T == abi.UintTy && (n.Sign() < 0 || n.BitLen() > typ.Size) {
			return nil, fmt.Errorf("value %s out of range for %s", n, typeName)
		}
		if typ.T == abi.IntTy {
			bound := new(big.Int).Lsh(big.NewInt(1), uint(typ.Size-1))
			if n.Cmp(new(big.Int).Neg(bound)) < 0 || n.Cmp(new(big.Int).Sub(bound, big.NewInt(1))) > 0 {
				return nil, fmt.Errorf("value %s out of range for %s", n, typeName)
			}
		}
		if typ.Size <= 64 {
			// Small integer widths map to native Go types in go-ethereum's
			// packer.
			if typ.T == abi.UintTy {
				switch typ.Size {
				case 8:
					return uint8(n.Uint64()), nil
				case 16:
					return uint16(n.Uint64()), nil
				case 32:
					return uint32(n.Uint64()), nil
				case 64:
					return n.Uint64(), nil
				}
			} else {
				if !n.IsInt64() {
					return nil, fmt.Errorf("value %s out of range for %s", n, typeName)
				}
				switch typ.Size {
				case 8:
					return int8(n.Int64()), nil
				case 16:
					return int16(n.Int64()), nil
				case 32:
					return int32(n.Int64()), nil
				case 64:
					return n.Int64(), nil
				}
			}
		}
		return n, nil
	case abi.BoolTy:
		switch v := arg.(type) {
		case bool:
			return v, nil
		case string:
			switch v {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, fmt.Errorf("boolean argument must be true or false, got %v", arg)
	case abi.StringTy:
		s, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("string argument expected, got %T", arg)
		}
		return s, nil
	case abi.BytesTy:
		s, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("bytes argument must be a hex string, got %T", arg)
		}
		data, err := hexutil.Decode(ensureHexPrefix(s))
		if err != nil {
			return nil, fmt.Errorf("invalid bytes hex %q: %w", s, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported ABI type %q", typeName)
	}
}
